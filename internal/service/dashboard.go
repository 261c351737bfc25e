package service

import (
	"context"
	"fmt"
	"log/slog"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger/sl"
	"productivity-tracker/internal/metrics"
	"time"
)

type SnapshotProvider interface {
	Snapshot() *models.Dataset
}

type DashboardService struct {
	log    *slog.Logger
	store  SnapshotProvider
	roster []string
	now    func() time.Time
}

func NewDashboardService(
	log *slog.Logger,
	store SnapshotProvider,
	roster []string,
	now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		log:    log,
		store:  store,
		roster: roster,
		now:    now,
	}
}

// view returns the current snapshot narrowed to team.
func (s *DashboardService) view(team string) models.Dataset {
	return metrics.FilterByTeam(*s.store.Snapshot(), team)
}

func (s *DashboardService) Overview(ctx context.Context, team string) models.Overview {
	const op = "service.dashboard.Overview"

	overview := metrics.Overview(s.view(team))

	s.log.With(slog.String("op", op)).Debug("overview computed",
		slog.String("team", team),
		slog.Float64("total_time_spent", overview.TotalTimeSpent))

	return overview
}

func (s *DashboardService) TimeDistribution(ctx context.Context, period, team string) models.TimeDistribution {
	return metrics.TimeDistribution(s.view(team), period)
}

func (s *DashboardService) TeamPerformance(ctx context.Context, team string) []models.MemberPerformance {
	return metrics.TeamPerformance(s.view(team), s.roster)
}

func (s *DashboardService) Insights(ctx context.Context, team string) []models.Insight {
	const op = "service.dashboard.Insights"

	insights := metrics.Insights(s.view(team))

	s.log.With(slog.String("op", op)).Debug("insights evaluated",
		slog.String("team", team),
		slog.Int("fired", len(insights)))

	return insights
}

func (s *DashboardService) Trends(ctx context.Context, days int, team string) (models.Trends, error) {
	const op = "service.dashboard.Trends"

	log := s.log.With(slog.String("op", op))

	trends, err := metrics.Trends(s.view(team), days, s.now())
	if err != nil {
		log.Warn("rejected trend window", slog.Int("days", days), sl.Err(err))
		return models.Trends{}, fmt.Errorf("%s: %w", op, err)
	}

	return trends, nil
}
