package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"todoList/internal/clock"
	"todoList/internal/models/todo"
	"todoList/internal/repository"
	"todoList/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTodoRepository - repository mock
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) CreateTable(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockTodoRepository) Insert(ctx context.Context, text string, dateAdded time.Time) error {
	args := m.Called(ctx, text, dateAdded)
	return args.Error(0)
}

func (m *MockTodoRepository) DeleteByID(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoRepository) MarkDoneByID(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTodoRepository) ListRecent(ctx context.Context, limit int, includeDone bool) ([]*todo.Item, error) {
	args := m.Called(ctx, limit, includeDone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*todo.Item), args.Error(1)
}

var _ service.TodoRepository = (*MockTodoRepository)(nil)

var now = time.Date(2024, 5, 17, 9, 30, 0, 123456000, time.UTC)

func TestTodoService_Prepare(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("CreateTable", mock.Anything).Return()

	svc := service.NewTodoService(mockRepo, clock.Fixed(now))
	svc.Prepare(context.Background())

	mockRepo.AssertExpectations(t)
}

// TestTodoService_Add checks the clock reading is what gets stored
func TestTodoService_Add(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockTodoRepository)
		expectErr error
	}{
		{
			name: "success - stamped with the clock",
			setupMock: func(m *MockTodoRepository) {
				m.On("Insert", mock.Anything, "buy milk", now).Return(nil)
			},
		},
		{
			name: "error - store unavailable is passed through",
			setupMock: func(m *MockTodoRepository) {
				m.On("Insert", mock.Anything, "buy milk", now).
					Return(repository.Wrap("insert", errors.New("connection refused")))
			},
			expectErr: repository.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			tt.setupMock(mockRepo)

			svc := service.NewTodoService(mockRepo, clock.Fixed(now))
			err := svc.Add(context.Background(), "buy milk")

			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Equal(t, "connection refused", err.Error())
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("DeleteByID", mock.Anything, int32(4)).Return(nil)
	mockRepo.On("DeleteByID", mock.Anything, int32(5)).Return(repository.Wrap("delete", errors.New("broken pipe")))

	svc := service.NewTodoService(mockRepo, clock.Fixed(now))

	assert.NoError(t, svc.Delete(context.Background(), 4))
	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	mockRepo.AssertExpectations(t)
}

func TestTodoService_Do(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("MarkDoneByID", mock.Anything, int32(2)).Return(nil)

	svc := service.NewTodoService(mockRepo, clock.Fixed(now))

	assert.NoError(t, svc.Do(context.Background(), 2))
	mockRepo.AssertExpectations(t)
}

// TestTodoService_Recent checks the fixed window and the done flag
func TestTodoService_Recent(t *testing.T) {
	items := []*todo.Item{{ID: 1, Text: "buy milk", DateAdded: now}}

	tests := []struct {
		name     string
		showDone bool
	}{
		{name: "pending only", showDone: false},
		{name: "with done", showDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTodoRepository)
			mockRepo.On("ListRecent", mock.Anything, todo.RecentLimit, tt.showDone).Return(items, nil)

			svc := service.NewTodoService(mockRepo, clock.Fixed(now))
			got, err := svc.Recent(context.Background(), tt.showDone)

			require.NoError(t, err)
			assert.Equal(t, items, got)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTodoService_Recent_Error(t *testing.T) {
	mockRepo := new(MockTodoRepository)
	mockRepo.On("ListRecent", mock.Anything, todo.RecentLimit, false).
		Return(nil, repository.Wrap("list", errors.New("connection reset")))

	svc := service.NewTodoService(mockRepo, clock.Fixed(now))
	got, err := svc.Recent(context.Background(), false)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
