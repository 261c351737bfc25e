package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/apperrors"
	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger"
)

type staticStore struct {
	ds *models.Dataset
}

func (s staticStore) Snapshot() *models.Dataset { return s.ds }
func (s staticStore) Loaded() bool { return s.ds != nil }

type toggle bool

func (t toggle) Enabled() bool { return bool(t) }

func fixture() *models.Dataset {
	return &models.Dataset{
		Source:   "mock",
		LoadedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Stories: []models.UserStory{
			{ID: "US-1", Status: "Done", Assignee: "Alice", Team: "Team Alpha", CreatedDate: "2024-03-10", TimeSpent: 14},
			{ID: "US-2", Status: "In Progress", Assignee: "Bob", Team: "Team Beta", CreatedDate: "2024-03-09", TimeSpent: 7},
		},
		PullRequests: []models.PullRequest{
			{ID: "PR-1", Status: "Merged", Author: "Alice", Team: "Team Alpha", CreatedDate: "2024-03-10", TimeSpent: 20},
		},
	}
}

func TestDashboardService(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC) }
	s := NewDashboardService(logger.Discard(), staticStore{fixture()}, []string{"Alice", "Bob", "Carol"}, now)
	ctx := context.Background()

	overview := s.Overview(ctx, "")
	assert.Equal(t, 2, overview.TotalStories)
	assert.Equal(t, 50.0, overview.StoryCompletionRate)
	assert.Equal(t, 100.0, overview.PRMergeRate)

	alpha := s.Overview(ctx, "Team Alpha")
	assert.Equal(t, 1, alpha.TotalStories)
	assert.Equal(t, 34.0, alpha.TotalTimeSpent)

	assert.Len(t, s.TeamPerformance(ctx, "Team Beta"), 3)

	trends, err := s.Trends(ctx, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-09", "2024-03-10"}, trends.Dates)
	assert.Equal(t, 1.0, trends.Data["2024-03-09"].Development)
	assert.InDelta(t, 2.0+20.0/7, trends.Data["2024-03-10"].Development, 1e-9)

	_, err = s.Trends(ctx, 0, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDays)
}

func TestActivityService(t *testing.T) {
	s := NewActivityService(logger.Discard(), staticStore{fixture()})
	ctx := context.Background()

	stories := s.UserStories(ctx, "Team Beta")
	assert.Equal(t, 1, stories.Total)
	assert.Equal(t, 1, stories.InProgress)

	assert.Equal(t, 0, s.PullRequests(ctx, "Nobody").Total)
	assert.Equal(t, []string{"Team Alpha", "Team Beta"}, s.Teams(ctx))
}

func TestStatusService(t *testing.T) {
	s := NewStatusService(logger.Discard(), staticStore{fixture()}, "mock", nil, toggle(false), toggle(true), toggle(false))

	st := s.Status(context.Background())
	assert.Equal(t, "mock", st.DataSource)
	assert.True(t, st.UseMockData)
	assert.False(t, st.JiraEnabled)
	assert.True(t, st.GitLabEnabled)
	assert.NotNil(t, st.Teams)
	assert.Equal(t, fixture().LoadedAt, st.LoadedAt)
	assert.NoError(t, s.Health(context.Background()))

	empty := NewStatusService(logger.Discard(), staticStore{}, "live", nil, toggle(true), toggle(true), toggle(false))
	assert.ErrorIs(t, empty.Health(context.Background()), apperrors.ErrNoSnapshot)
}

type fakeReloader struct {
	err error
}

func (f fakeReloader) Reload(context.Context) (*models.Dataset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return fixture(), nil
}

type countingPurger struct{ n int }

func (p *countingPurger) Purge() { p.n++ }

func TestReloadService(t *testing.T) {
	purger := &countingPurger{}
	s := NewReloadService(logger.Discard(), fakeReloader{}, purger)

	res, err := s.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock", res.Source)
	assert.Equal(t, models.DatasetCounts{Stories: 2, PullRequests: 1}, res.Counts)
	assert.Equal(t, 1, purger.n)

	failing := NewReloadService(logger.Discard(), fakeReloader{err: errors.New("boom")}, nil)
	_, err = failing.Reload(context.Background())
	assert.Error(t, err)
}

type fakeDocs struct {
	toggle
	err error
}

func (f fakeDocs) DocumentationStats(context.Context) (models.DocumentationStats, error) {
	if f.err != nil {
		return models.DocumentationStats{}, f.err
	}
	return models.DocumentationStats{Enabled: true, TotalPages: 12}, nil
}

type fakePipelines struct {
	toggle
}

func (f fakePipelines) PipelineStats(context.Context) (models.PipelineStats, error) {
	return models.PipelineStats{Enabled: true, TotalPipelines: 4, Successful: 3}, nil
}

func TestIntegrationService(t *testing.T) {
	ctx := context.Background()

	s := NewIntegrationService(logger.Discard(), fakeDocs{toggle: true}, fakePipelines{toggle: true})
	assert.Equal(t, 12, s.Documentation(ctx).TotalPages)
	assert.Equal(t, 4, s.Pipelines(ctx).TotalPipelines)

	disabled := NewIntegrationService(logger.Discard(), fakeDocs{toggle: false}, fakePipelines{toggle: false})
	docs := disabled.Documentation(ctx)
	assert.False(t, docs.Enabled)
	assert.NotNil(t, docs.TeamPages)
	assert.False(t, disabled.Pipelines(ctx).Enabled)

	failing := NewIntegrationService(logger.Discard(), fakeDocs{toggle: true, err: errors.New("502")}, fakePipelines{})
	docs = failing.Documentation(ctx)
	assert.True(t, docs.Enabled)
	assert.Zero(t, docs.TotalPages)
}
