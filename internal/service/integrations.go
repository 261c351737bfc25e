package service

import (
	"context"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
)

type DocumentationProvider interface {
	Toggle
	DocumentationStats(ctx context.Context) (models.DocumentationStats, error)
}

type PipelineProvider interface {
	Toggle
	PipelineStats(ctx context.Context) (models.PipelineStats, error)
}

// IntegrationService serves upstream statistics that are fetched per request
// rather than held in the record store. Upstream failures degrade to zero values.
type IntegrationService struct {
	log       *slog.Logger
	docs      DocumentationProvider
	pipelines PipelineProvider
}

func NewIntegrationService(log *slog.Logger, docs DocumentationProvider, pipelines PipelineProvider) *IntegrationService {
	return &IntegrationService{
		log:       log,
		docs:      docs,
		pipelines: pipelines,
	}
}

func (s *IntegrationService) Documentation(ctx context.Context) models.DocumentationStats {
	const op = "service.integrations.Documentation"

	empty := models.DocumentationStats{
		Enabled:        s.docs.Enabled(),
		TeamPages:      map[string]int{},
		Retrospectives: []models.Retrospective{},
	}
	if !empty.Enabled {
		return empty
	}

	stats, err := s.docs.DocumentationStats(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to fetch documentation stats", sl.Err(err))
		return empty
	}

	return stats
}

func (s *IntegrationService) Pipelines(ctx context.Context) models.PipelineStats {
	const op = "service.integrations.Pipelines"

	empty := models.PipelineStats{Enabled: s.pipelines.Enabled()}
	if !empty.Enabled {
		return empty
	}

	stats, err := s.pipelines.PipelineStats(ctx)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to fetch pipeline stats", sl.Err(err))
		return empty
	}

	return stats
}
