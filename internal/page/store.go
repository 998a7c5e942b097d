// internal/page/store.go
//
// Descriptor stores.
//
// Context
// -------
// A Store maps a slug to a validated *Page.  Two backends exist:
//
//   • FileStore ─ `<dir>/<slug>.yaml` on disk.
//   • SQLStore  ─ the `page` table, one YAML descriptor per row.
//
// Cached wraps either one with an LRU and collapses concurrent loads of the
// same slug into one backend call (singleflight).  Hits, misses, and load
// errors are counted in internal/metrics.
package page

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/headmeta/internal/cache"
	"github.com/yanizio/headmeta/internal/metrics"
)

// Store looks up page descriptors by slug.
type Store interface {
	// Get returns the descriptor for slug, ErrNotFound, ErrInvalidSlug, or
	// an error wrapping ErrInvalidPage.
	Get(ctx context.Context, slug string) (*Page, error)
}

// loadTimeout bounds one inner load.  The load runs detached from the
// caller that started it, so other callers waiting on the same slug are not
// failed when that caller goes away.
const loadTimeout = 10 * time.Second

// Cached is a Store with an in-memory LRU in front of another Store.
type Cached struct {
	inner Store
	lru   *cache.LRU[string, *Page]
	sfg   singleflight.Group
}

// NewCached wraps inner with an LRU of the given size.
func NewCached(inner Store, size int) *Cached {
	return &Cached{inner: inner, lru: cache.New[string, *Page](size)}
}

// Get returns the cached descriptor or loads it from the inner store.
// Misses are not cached.
func (c *Cached) Get(ctx context.Context, slug string) (*Page, error) {
	slug, err := NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}
	if p, ok := c.lru.Get(slug); ok {
		metrics.PageCacheHits.Inc()
		return p, nil
	}

	ch := c.sfg.DoChan(slug, func() (any, error) {
		// Double-check after singleflight barrier.
		if p, ok := c.lru.Get(slug); ok {
			return p, nil
		}
		metrics.PageCacheMisses.Inc()

		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		p, err := c.inner.Get(lctx, slug)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				metrics.PageLoadErrors.Inc()
				zap.S().Warnw("page load failed", "slug", slug, "err", err)
			}
			return nil, err
		}
		c.lru.Add(slug, p)
		zap.S().Debugw("page loaded", "slug", slug)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Page), nil
	}
}

// Invalidate drops slug from the cache.
func (c *Cached) Invalidate(slug string) {
	if s, err := NormalizeSlug(slug); err == nil {
		c.lru.Remove(s)
	}
}

// Purge drops every cached descriptor.
func (c *Cached) Purge() { c.lru.Purge() }

// finish fills a missing slug, checks it matches the requested one, and
// validates p.
func finish(p *Page, slug string) (*Page, error) {
	if p.Slug == "" {
		p.Slug = slug
	}
	if p.Slug != slug {
		return nil, errorf("descriptor slug %q does not match %q", p.Slug, slug)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
