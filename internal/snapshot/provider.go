// Package snapshot caches the raw entity collections fetched from a
// data source. Only raw data is ever cached here; derived query
// results are recomputed on every call.
package snapshot

import (
	"context"
	"sync"
	"time"

	"vendite/internal/datasource"
)

// Provider wraps a Source and hands out a cached Snapshot until its
// TTL elapses or Invalidate is called. A TTL of zero disables caching
// and every Get fetches fresh.
type Provider struct {
	src datasource.Source
	ttl time.Duration

	mu        sync.Mutex
	snap      datasource.Snapshot
	fetchedAt time.Time
	valid     bool

	onRefresh func()
}

func NewProvider(src datasource.Source, ttl time.Duration) *Provider {
	return &Provider{src: src, ttl: ttl}
}

// OnRefresh registers a callback invoked after each fetch from the
// underlying source, used for metrics.
func (p *Provider) OnRefresh(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRefresh = fn
}

// Get returns the cached snapshot, fetching from the source when the
// cache is empty or expired. Concurrent callers share one fetch.
func (p *Provider) Get(ctx context.Context) (datasource.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && p.ttl > 0 && time.Since(p.fetchedAt) < p.ttl {
		return p.snap, nil
	}

	snap, err := datasource.Fetch(ctx, p.src)
	if err != nil {
		return datasource.Snapshot{}, err
	}

	p.snap = snap
	p.fetchedAt = time.Now()
	p.valid = true
	if p.onRefresh != nil {
		p.onRefresh()
	}
	return snap, nil
}

// Invalidate drops the cached snapshot so the next Get fetches fresh.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.valid = false
}
