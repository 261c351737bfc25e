package providers

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

type fakeTracker struct {
	enabled bool
	failing bool
	purged  int
	// started, when set, makes UserStories signal and then block until ctx is done.
	started chan struct{}
}

func (f *fakeTracker) Enabled() bool { return f.enabled }
func (f *fakeTracker) Purge()        { f.purged++ }

func (f *fakeTracker) UserStories(ctx context.Context) ([]models.UserStory, error) {
	if f.started != nil {
		close(f.started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []models.UserStory{{ID: "US-1"}}, nil
}

func (f *fakeTracker) TestActivities(context.Context) ([]models.TestActivity, error) {
	if f.failing {
		return nil, errors.New("jira: 503")
	}
	return []models.TestActivity{{ID: "T-1"}}, nil
}

func (f *fakeTracker) SupportTickets(context.Context) ([]models.SupportTicket, error) {
	return []models.SupportTicket{{ID: "S-1"}}, nil
}

func (f *fakeTracker) ProductionIssues(context.Context) ([]models.ProductionIssue, error) {
	return []models.ProductionIssue{{ID: "PI-1"}}, nil
}

type fakeSCM struct {
	enabled bool
	purged  int
}

func (f *fakeSCM) Enabled() bool { return f.enabled }
func (f *fakeSCM) Purge()        { f.purged++ }

func (f *fakeSCM) MergeRequests(context.Context) ([]models.PullRequest, error) {
	if !f.enabled {
		return nil, apperrors.ErrProviderDisabled
	}
	return []models.PullRequest{{ID: "MR-1"}, {ID: "MR-2"}}, nil
}

func TestLiveLoader_Load(t *testing.T) {
	l := NewLiveLoader(logger.Discard(), &fakeTracker{enabled: true}, &fakeSCM{enabled: true})

	ds, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SourceName, ds.Source)
	assert.False(t, ds.LoadedAt.IsZero())
	assert.Equal(t, models.DatasetCounts{Stories: 1, PullRequests: 2, Tests: 1, Support: 1, Issues: 1}, ds.Counts())
}

func TestLiveLoader_SwallowsFailures(t *testing.T) {
	l := NewLiveLoader(logger.Discard(), &fakeTracker{enabled: true, failing: true}, &fakeSCM{})

	ds, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, ds.Tests)
	assert.Empty(t, ds.Tests)
	assert.Empty(t, ds.PullRequests)
	assert.Len(t, ds.Stories, 1)
}

func TestLiveLoader_CancelledContext(t *testing.T) {
	l := NewLiveLoader(logger.Discard(), &fakeTracker{enabled: true}, &fakeSCM{enabled: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLiveLoader_CancelDuringFetch(t *testing.T) {
	tracker := &fakeTracker{enabled: true, started: make(chan struct{})}
	l := NewLiveLoader(logger.Discard(), tracker, &fakeSCM{enabled: true})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-tracker.started
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := l.Load(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("load did not stop after cancellation")
	}
}

func TestLiveLoader_Purge(t *testing.T) {
	tracker, scm := &fakeTracker{}, &fakeSCM{}
	NewLiveLoader(logger.Discard(), tracker, scm).Purge()

	assert.Equal(t, 1, tracker.purged)
	assert.Equal(t, 1, scm.purged)
}
