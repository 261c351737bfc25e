package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"productivity-tracker/internal/lib/logger"
	"productivity-tracker/internal/lib/migrator"
)

// Setup starts a throwaway Postgres with the warehouse schema applied.
func Setup(ctx context.Context) (db *sqlx.DB, cleanup func(), err error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("warehouse-test"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start pg container: %w", err)
	}

	teardown := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err := migrator.RunMigrations(ctx, db, logger.Discard()); err != nil {
		_ = db.Close()
		teardown()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, func() {
		_ = db.Close()
		teardown()
	}, nil
}
