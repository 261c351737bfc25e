// Package store holds the current dataset snapshot. Readers never block;
// a reload builds a new snapshot and swaps it in atomically.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"sync"
	"sync/atomic"
)

type Loader interface {
	Load(ctx context.Context) (models.Dataset, error)
}

type Store struct {
	log    *slog.Logger
	loader Loader

	current  atomic.Pointer[models.Dataset]
	reloadMu sync.Mutex
}

func New(log *slog.Logger, loader Loader) *Store {
	return &Store{log: log, loader: loader}
}

// Snapshot returns the current dataset, or an empty one before the first load.
func (s *Store) Snapshot() *models.Dataset {
	if ds := s.current.Load(); ds != nil {
		return ds
	}
	return &models.Dataset{}
}

func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Reload loads a fresh dataset, validates it and publishes it. The previous
// snapshot stays in place when loading fails.
func (s *Store) Reload(ctx context.Context) (*models.Dataset, error) {
	const op = "store.Reload"

	log := s.log.With(slog.String("op", op))

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	raw, err := s.loader.Load(ctx)
	if err != nil {
		log.Error("failed to load dataset", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	dropped := 0
	ds := raw.Validated(func(err error) {
		dropped++
		log.Warn("dropping invalid record", sl.Err(err))
	})

	s.current.Store(&ds)

	log.Info("dataset published",
		slog.String("source", ds.Source),
		slog.Any("counts", ds.Counts()),
		slog.Int("dropped", dropped),
	)

	return &ds, nil
}
