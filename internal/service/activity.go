package service

import (
	"context"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/metrics"
)

// ActivityService serves the per-category record listings.
type ActivityService struct {
	log   *slog.Logger
	store SnapshotProvider
}

func NewActivityService(log *slog.Logger, store SnapshotProvider) *ActivityService {
	return &ActivityService{
		log:   log,
		store: store,
	}
}

func (s *ActivityService) view(team string) models.Dataset {
	return metrics.FilterByTeam(*s.store.Snapshot(), team)
}

func (s *ActivityService) UserStories(ctx context.Context, team string) models.StorySummary {
	return metrics.StorySummary(s.view(team))
}

func (s *ActivityService) PullRequests(ctx context.Context, team string) models.PullRequestSummary {
	return metrics.PullRequestSummary(s.view(team))
}

func (s *ActivityService) Testing(ctx context.Context, team string) models.TestingSummary {
	return metrics.TestingSummary(s.view(team))
}

func (s *ActivityService) ProdSupport(ctx context.Context, team string) models.SupportSummary {
	return metrics.SupportSummary(s.view(team))
}

func (s *ActivityService) ProdIssues(ctx context.Context, team string) models.IssueSummary {
	return metrics.IssueSummary(s.view(team))
}

// Teams lists the distinct team names present in the current records.
func (s *ActivityService) Teams(ctx context.Context) []string {
	return metrics.Teams(*s.store.Snapshot())
}
