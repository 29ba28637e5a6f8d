package postgres

import (
	"context"
	"fmt"
	"time"
	"todoList/internal/logger"
	"todoList/internal/models/todo"
	repo "todoList/internal/repository"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const slowQuery = 100 * time.Millisecond

// Storage owns the todo_item table. It holds a single connection for the
// lifetime of the process; nothing here is safe for concurrent use.
type Storage struct {
	conn *pgx.Conn
}

func New(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgx.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: invalid connection string", err)
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	// plain TCP only
	config.TLSConfig = nil
	config.Fallbacks = nil

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: connection failed", err)
		return nil, repo.Wrap("connect", err)
	}

	logger.Info("Repository: connected to PostgreSQL",
		zap.String("host", config.Host),
		zap.Uint16("port", config.Port),
		zap.String("database", config.Database))
	return &Storage{conn: conn}, nil
}

func (s *Storage) Close(ctx context.Context) {
	if err := s.conn.Close(ctx); err != nil {
		logger.Warn("Repository: closing connection", zap.Error(err))
		return
	}
	logger.Info("Repository: connection closed")
}

// CreateTable makes sure todo_item exists. Failures are logged and dropped:
// the table is usually there already, and a real problem resurfaces on the
// next statement.
func (s *Storage) CreateTable(ctx context.Context) {
	start := time.Now()

	if _, err := s.conn.Exec(ctx, createTableQuery); err != nil {
		logger.Debug("Repository: create table failed", zap.Error(err), zap.Duration("ms", time.Since(start)))
		return
	}
	observe("create table", start)
}

func (s *Storage) Insert(ctx context.Context, text string, dateAdded time.Time) error {
	start := time.Now()

	_, err := s.conn.Exec(ctx, insertQuery, text, dateAdded)
	if err != nil {
		logger.Warn("Repository: insert failed", zap.Error(err), zap.Duration("ms", time.Since(start)))
		return repo.Wrap("insert", err)
	}

	observe("insert", start)
	return nil
}

// DeleteByID removes the row with id. Zero rows affected is not an error.
func (s *Storage) DeleteByID(ctx context.Context, id int32) error {
	start := time.Now()

	tag, err := s.conn.Exec(ctx, deleteByIDQuery, id)
	if err != nil {
		logger.Warn("Repository: delete failed", zap.Error(err), zap.Int32("id", id), zap.Duration("ms", time.Since(start)))
		return repo.Wrap("delete", err)
	}

	logger.Debug("Repository: delete", zap.Int32("id", id), zap.Int64("affected", tag.RowsAffected()))
	observe("delete", start)
	return nil
}

// MarkDoneByID sets done on the row with id. Missing and already done rows
// are both fine.
func (s *Storage) MarkDoneByID(ctx context.Context, id int32) error {
	start := time.Now()

	tag, err := s.conn.Exec(ctx, markDoneByIDQuery, id)
	if err != nil {
		logger.Warn("Repository: mark done failed", zap.Error(err), zap.Int32("id", id), zap.Duration("ms", time.Since(start)))
		return repo.Wrap("mark done", err)
	}

	logger.Debug("Repository: mark done", zap.Int32("id", id), zap.Int64("affected", tag.RowsAffected()))
	observe("mark done", start)
	return nil
}

// ListRecent returns at most limit items, newest first. Done items are
// filtered out before the limit unless includeDone is set.
func (s *Storage) ListRecent(ctx context.Context, limit int, includeDone bool) ([]*todo.Item, error) {
	if limit <= 0 {
		return []*todo.Item{}, nil
	}
	start := time.Now()

	query := listRecentPendingQuery
	if includeDone {
		query = listRecentQuery
	}

	rows, err := s.conn.Query(ctx, query, limit)
	if err != nil {
		logger.Warn("Repository: list failed", zap.Error(err), zap.Duration("ms", time.Since(start)))
		return nil, repo.Wrap("list", err)
	}
	defer rows.Close()

	items := make([]*todo.Item, 0, limit)
	for rows.Next() {
		item := &todo.Item{}
		if err := rows.Scan(&item.ID, &item.Text, &item.DateAdded, &item.Done); err != nil {
			logger.Warn("Repository: scanning row", zap.Error(err))
			return nil, repo.Wrap("list", err)
		}
		item.DateAdded = item.DateAdded.UTC()
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Warn("Repository: iterating rows", zap.Error(err))
		return nil, repo.Wrap("list", err)
	}

	observe("list", start, zap.Int("rows", len(items)))
	return items, nil
}

func observe(op string, start time.Time, fields ...zap.Field) {
	took := time.Since(start)
	fields = append(fields, zap.String("op", op), zap.Duration("ms", took))
	if took > slowQuery {
		logger.Warn("Repository: slow query", fields...)
		return
	}
	logger.Debug("Repository: query done", fields...)
}
