package postgresql

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"productivity-tracker/internal/config"
	"time"
)

const connectTimeout = 5 * time.Second

type Storage struct {
	db *sqlx.DB
}

// New opens and pings the warehouse database.
func New(ctx context.Context, cfg config.PostgresConfig) (*Storage, error) {
	const op = "storage.postgresql.New"

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open db: %w", op, err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to ping db: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) GetDB() *sqlx.DB {
	return s.db
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
