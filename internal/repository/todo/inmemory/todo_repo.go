package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/todo"

	"go.uber.org/zap"
)

// TodoStorage keeps rows in process memory. Ids come from a counter, like
// a serial column.
type TodoStorage struct {
	storage map[int32]*todo.Item
	mtx     *sync.RWMutex
	lastID  int32
}

func NewTodoStorage() *TodoStorage {
	return &TodoStorage{
		storage: make(map[int32]*todo.Item),
		mtx:     &sync.RWMutex{},
	}
}

func (s *TodoStorage) CreateTable(ctx context.Context) {
	logger.Debug("Repository: in-memory table ready")
}

func (s *TodoStorage) Insert(ctx context.Context, text string, dateAdded time.Time) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.lastID++
	s.storage[s.lastID] = &todo.Item{
		ID:        s.lastID,
		Text:      text,
		DateAdded: dateAdded.UTC(),
	}
	return nil
}

func (s *TodoStorage) DeleteByID(ctx context.Context, id int32) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		logger.Debug("Repository: delete", zap.Int32("id", id), zap.Int64("affected", 0))
		return nil
	}
	delete(s.storage, id)
	return nil
}

func (s *TodoStorage) MarkDoneByID(ctx context.Context, id int32) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	item, ok := s.storage[id]
	if !ok {
		logger.Debug("Repository: mark done", zap.Int32("id", id), zap.Int64("affected", 0))
		return nil
	}
	item.Done = true
	return nil
}

// ListRecent returns copies, so callers cannot reach into the store.
func (s *TodoStorage) ListRecent(ctx context.Context, limit int, includeDone bool) ([]*todo.Item, error) {
	if limit <= 0 {
		return []*todo.Item{}, nil
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	candidates := make([]*todo.Item, 0, len(s.storage))
	for _, item := range s.storage {
		if item.Done && !includeDone {
			continue
		}
		candidates = append(candidates, item)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DateAdded.Equal(candidates[j].DateAdded) {
			return candidates[i].ID > candidates[j].ID
		}
		return candidates[i].DateAdded.After(candidates[j].DateAdded)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	res := make([]*todo.Item, 0, len(candidates))
	for _, item := range candidates {
		itemCopy := *item
		res = append(res, &itemCopy)
	}
	return res, nil
}
