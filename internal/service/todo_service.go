package service

import (
	"context"
	"todoList/internal/clock"
	"todoList/internal/logger"
	"todoList/internal/models/todo"

	"go.uber.org/zap"
)

// TodoService sits between the dispatcher and the store. Store errors are
// passed up untouched so their driver message can be shown as is.
type TodoService struct {
	repo  TodoRepository
	clock clock.Clock
}

func NewTodoService(repo TodoRepository, clk clock.Clock) TodoService {
	return TodoService{
		repo:  repo,
		clock: clk,
	}
}

// Prepare creates the table if needed. It never fails.
func (s *TodoService) Prepare(ctx context.Context) {
	s.repo.CreateTable(ctx)
}

func (s *TodoService) Add(ctx context.Context, text string) error {
	dateAdded := s.clock.Now()
	if err := s.repo.Insert(ctx, text, dateAdded); err != nil {
		logger.Info("Service: item not added", zap.Error(err))
		return err
	}
	logger.Info("Service: item added", zap.Time("date_added", dateAdded))
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id int32) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		logger.Info("Service: item not deleted", zap.Int32("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *TodoService) Do(ctx context.Context, id int32) error {
	if err := s.repo.MarkDoneByID(ctx, id); err != nil {
		logger.Info("Service: item not done", zap.Int32("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Recent returns the newest todo.RecentLimit items, pending ones only unless
// showDone is set.
func (s *TodoService) Recent(ctx context.Context, showDone bool) ([]*todo.Item, error) {
	return s.repo.ListRecent(ctx, todo.RecentLimit, showDone)
}
