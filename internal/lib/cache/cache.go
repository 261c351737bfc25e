// Package cache provides typed, time-bounded caches for upstream fetches.
//
// A Value holds the result of exactly one fetch operation, so adapters
// declare one Value per operation instead of sharing a keyed cache.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// loadTimeout caps a shared load once it no longer follows a caller's ctx.
const loadTimeout = 2 * time.Minute

type slot struct{}

// Value caches a single V for a fixed TTL. A non-positive TTL disables
// caching: every GetOrLoad call runs the loader.
type Value[V any] struct {
	ttl   time.Duration
	lru   *expirable.LRU[slot, V]
	group singleflight.Group
}

func NewValue[V any](ttl time.Duration) *Value[V] {
	c := &Value[V]{ttl: ttl}
	if ttl > 0 {
		c.lru = expirable.NewLRU[slot, V](1, nil, ttl)
	}
	return c
}

func (c *Value[V]) Get() (V, bool) {
	if c.lru == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(slot{})
}

func (c *Value[V]) Set(v V) {
	if c.lru == nil {
		return
	}
	c.lru.Add(slot{}, v)
}

func (c *Value[V]) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// GetOrLoad returns the cached value or runs load. Concurrent misses share
// one load call, which is detached from any single caller's cancellation and
// bounded by loadTimeout instead. Each caller still returns early when its
// own ctx is done. Failed loads are not cached.
func (c *Value[V]) GetOrLoad(ctx context.Context, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(); ok {
		return v, nil
	}

	ch := c.group.DoChan("load", func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		v, err := load(loadCtx)
		if err != nil {
			return v, err
		}
		c.Set(v)
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}
