package httpjson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/apperrors"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/search", r.URL.Path)
		assert.Equal(t, "project = OPS", r.URL.Query().Get("jql"))
		assert.Equal(t, "secret", r.Header.Get("PRIVATE-TOKEN"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "dev@example.com", user)
		assert.Equal(t, "token", pass)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 2}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second,
		WithBasicAuth("dev@example.com", "token"),
		WithHeader("PRIVATE-TOKEN", "secret"),
	)

	var out struct {
		Total int `json:"total"`
	}
	err := c.Get(context.Background(), "/rest/api/2/search", url.Values{"jql": {"project = OPS"}}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[1,2,3]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithInitialDelay(time.Millisecond))

	var out []int
	require.NoError(t, c.Get(context.Background(), "items", nil, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithInitialDelay(time.Millisecond))

	var out map[string]any
	err := c.Get(context.Background(), "items", nil, &out)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamStatus)
	assert.Contains(t, err.Error(), "status=401")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClientGivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, WithRetries(1), WithInitialDelay(time.Millisecond))

	var out map[string]any
	err := c.Get(context.Background(), "items", nil, &out)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamStatus)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
