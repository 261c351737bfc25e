package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/domain/models"
	"productivity-tracker/internal/lib/logger"
)

type loaderFunc func(ctx context.Context) (models.Dataset, error)

func (f loaderFunc) Load(ctx context.Context) (models.Dataset, error) {
	return f(ctx)
}

func story(id string, hours float64) models.UserStory {
	return models.UserStory{ID: id, Status: models.StoryStatusDone, CreatedDate: "2024-03-01", TimeSpent: hours}
}

func TestStore_SnapshotBeforeLoad(t *testing.T) {
	s := New(logger.Discard(), loaderFunc(func(context.Context) (models.Dataset, error) {
		return models.Dataset{}, nil
	}))

	assert.False(t, s.Loaded())
	require.NotNil(t, s.Snapshot())
	assert.Empty(t, s.Snapshot().Stories)
}

func TestStore_ReloadValidatesAndSwaps(t *testing.T) {
	s := New(logger.Discard(), loaderFunc(func(context.Context) (models.Dataset, error) {
		return models.Dataset{
			Source:  "mock",
			Stories: []models.UserStory{story("US-1", 3), story("", 1), story("US-3", -2)},
		}, nil
	}))

	ds, err := s.Reload(context.Background())
	require.NoError(t, err)

	assert.True(t, s.Loaded())
	assert.Same(t, ds, s.Snapshot())
	require.Len(t, ds.Stories, 1)
	assert.Equal(t, "US-1", ds.Stories[0].ID)
	assert.Equal(t, "mock", ds.Source)
}

func TestStore_FailedReloadKeepsPrevious(t *testing.T) {
	fail := false
	s := New(logger.Discard(), loaderFunc(func(context.Context) (models.Dataset, error) {
		if fail {
			return models.Dataset{}, errors.New("upstream down")
		}
		return models.Dataset{Stories: []models.UserStory{story("US-1", 1)}}, nil
	}))

	first, err := s.Reload(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = s.Reload(context.Background())
	require.Error(t, err)
	assert.Same(t, first, s.Snapshot())
}

func TestStore_ConcurrentReadsDuringReload(t *testing.T) {
	s := New(logger.Discard(), loaderFunc(func(context.Context) (models.Dataset, error) {
		return models.Dataset{Stories: []models.UserStory{story("US-1", 1)}}, nil
	}))
	_, err := s.Reload(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Reload(context.Background())
		}()
		go func() {
			defer wg.Done()
			assert.Len(t, s.Snapshot().Stories, 1)
		}()
	}
	wg.Wait()
}
