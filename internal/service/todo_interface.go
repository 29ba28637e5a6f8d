package service

import (
	"context"
	"time"
	"todoList/internal/models/todo"
)

type TodoRepository interface {
	CreateTable(context.Context)
	Insert(ctx context.Context, text string, dateAdded time.Time) error
	DeleteByID(context.Context, int32) error
	MarkDoneByID(context.Context, int32) error
	ListRecent(ctx context.Context, limit int, includeDone bool) ([]*todo.Item, error)
}
