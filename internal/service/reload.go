package service

import (
	"context"
	"fmt"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
)

type Reloader interface {
	Reload(ctx context.Context) (*models.Dataset, error)
}

// Purger drops cached upstream responses. Only live sources have one.
type Purger interface {
	Purge()
}

type ReloadService struct {
	log      *slog.Logger
	reloader Reloader
	purger   Purger
}

func NewReloadService(log *slog.Logger, reloader Reloader, purger Purger) *ReloadService {
	return &ReloadService{
		log:      log,
		reloader: reloader,
		purger:   purger,
	}
}

func (s *ReloadService) Reload(ctx context.Context) (models.ReloadResult, error) {
	const op = "service.reload.Reload"

	log := s.log.With(slog.String("op", op))

	log.Info("reloading dataset")

	if s.purger != nil {
		s.purger.Purge()
	}

	ds, err := s.reloader.Reload(ctx)
	if err != nil {
		log.Error("failed to reload dataset", sl.Err(err))
		return models.ReloadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.ReloadResult{
		Source:   ds.Source,
		LoadedAt: ds.LoadedAt,
		Counts:   ds.Counts(),
	}, nil
}
