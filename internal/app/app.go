package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"todoList/internal/cli"
	"todoList/internal/logger"
	"todoList/internal/models/todo"

	"go.uber.org/zap"
)

const (
	ExitOK          = 0
	ExitFetchFailed = 1
)

const (
	MsgAdded        = "Item added"
	MsgDeleted      = "Item deleted"
	MsgDone         = "Item done"
	MsgAddFailed    = "Failed to add the item"
	MsgDeleteFailed = "Failed to delete the item"
	MsgDoFailed     = "Failed to do the item"
	MsgFetchFailed  = "Cannot fetch todo items"
	MsgUnknown      = "Unknown command"
)

type Service interface {
	Prepare(context.Context)
	Add(ctx context.Context, text string) error
	Delete(ctx context.Context, id int32) error
	Do(ctx context.Context, id int32) error
	Recent(ctx context.Context, showDone bool) ([]*todo.Item, error)
}

// App runs one command per process. Outcome lines go to out; only a failed
// list writes to errOut, and only a failed list exits non-zero.
type App struct {
	service Service
	out     io.Writer
	errOut  io.Writer
}

func New(svc Service, out, errOut io.Writer) *App {
	return &App{
		service: svc,
		out:     out,
		errOut:  errOut,
	}
}

// Run creates the table, parses args (program name already stripped),
// executes the command and returns the exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	a.service.Prepare(ctx)

	cmd, err := cli.Parse(args)
	if err != nil {
		var argErr *cli.ArgError
		if errors.As(err, &argErr) {
			logger.Debug("App: usage error", zap.Error(err))
			a.println(argErr.Message)
			return ExitOK
		}
		a.println(err.Error())
		return ExitOK
	}

	logger.Debug("App: command", zap.String("command", cli.Describe(cmd)))

	switch c := cmd.(type) {
	case cli.Add:
		a.report(a.service.Add(ctx, c.Text), MsgAdded, MsgAddFailed)
	case cli.Delete:
		a.report(a.service.Delete(ctx, c.ID), MsgDeleted, MsgDeleteFailed)
	case cli.Do:
		a.report(a.service.Do(ctx, c.ID), MsgDone, MsgDoFailed)
	case cli.List:
		return a.list(ctx, c.ShowDone)
	case cli.Unknown:
		a.println(fmt.Sprintf("%s %s", MsgUnknown, c.Name))
	}
	return ExitOK
}

func (a *App) list(ctx context.Context, showDone bool) int {
	items, err := a.service.Recent(ctx, showDone)
	if err != nil {
		logger.Error("App: list failed", err)
		fmt.Fprintf(a.errOut, "%s (%s)\n", MsgFetchFailed, err)
		return ExitFetchFailed
	}

	for _, item := range items {
		a.println(item.Line())
	}
	return ExitOK
}

func (a *App) report(err error, success, failure string) {
	if err != nil {
		a.println(fmt.Sprintf("%s (%s)", failure, err))
		return
	}
	a.println(success)
}

func (a *App) println(line string) {
	fmt.Fprintln(a.out, line)
}
