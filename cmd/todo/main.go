package main

import (
	"context"
	"fmt"
	"os"
	"todoList/internal/app"
	"todoList/internal/clock"
	"todoList/internal/config"
	"todoList/internal/logger"
	"todoList/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load the configuration (%s)\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Development, cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot set up logging (%s)\n", err)
		return 1
	}
	defer logger.Sync()
	logger.With(zap.String("run_id", uuid.NewString()))

	repo, closeRepo, err := app.OpenRepository(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot connect to the database (%s)\n", err)
		return 1
	}
	defer closeRepo()

	svc := service.NewTodoService(repo, clock.UTC{})
	return app.New(&svc, os.Stdout, os.Stderr).Run(ctx, args)
}
