package app

import (
	"context"
	"fmt"
	"todoList/internal/config"
	"todoList/internal/logger"
	"todoList/internal/repository/todo/inmemory"
	"todoList/internal/repository/todo/postgres"
	"todoList/internal/service"

	"go.uber.org/zap"
)

// OpenRepository picks the store named by the config. The returned func
// releases it.
func OpenRepository(ctx context.Context, cfg *config.Config) (service.TodoRepository, func(), error) {
	logger.Debug("App: opening repository", zap.String("type", cfg.Repository.Type))

	switch cfg.Repository.Type {
	case config.RepositoryInMemory:
		return inmemory.NewTodoStorage(), func() {}, nil

	case config.RepositoryPostgres, "":
		storage, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() { storage.Close(context.Background()) }, nil
	}

	return nil, nil, fmt.Errorf("unknown repository type %q", cfg.Repository.Type)
}
