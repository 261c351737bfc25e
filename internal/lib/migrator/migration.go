package migrator

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"log/slog"
)

//go:embed migrations/*.sql
var fs embed.FS

// RunMigrations applies the embedded warehouse schema migrations to db.
// Migrations run on one dedicated connection, which is returned to the
// pool afterwards; db itself stays open.
func RunMigrations(ctx context.Context, db *sqlx.DB, log *slog.Logger) error {
	const op = "migrator.RunMigrations"

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to acquire connection: %w", op, err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%s: failed to create driver: %w", op, err)
	}

	source, err := iofs.New(fs, "migrations")
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("%s: failed to create source: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return fmt.Errorf("%s: failed to create migrate instance: %w", op, err)
	}
	defer m.Close()

	log.Info("applying warehouse migrations")
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: migration failed: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("%s: failed to read version: %w", op, err)
	}
	log.Info("warehouse schema ready", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
