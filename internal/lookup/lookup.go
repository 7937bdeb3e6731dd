// Package lookup serves the id+name option lists of the lookup tables
// (tag, scene, costume, actress-type, publisher) from a short-lived
// cache, so repeated filter-panel opens within one session don't
// reload them.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is the freshness window for cached option lists.
const DefaultTTL = 60 * time.Second

// Loader caches lookup option lists keyed by relation. Concurrent
// loads of the same relation are collapsed to one gateway call.
type Loader struct {
	gw    gateway.Gateway
	cache *gocache.Cache
	sf    singleflight.Group
	log   *slog.Logger
}

// NewLoader creates a loader; ttl <= 0 uses DefaultTTL.
func NewLoader(gw gateway.Gateway, ttl time.Duration, log *slog.Logger) *Loader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		gw:    gw,
		cache: gocache.New(ttl, 2*ttl),
		log:   log,
	}
}

// Options returns the relation's option list, from cache when fresh.
func (l *Loader) Options(ctx context.Context, rel gateway.Relation) ([]media.LookupOption, error) {
	key := rel.String()
	if cached, ok := l.cache.Get(key); ok {
		return cached.([]media.LookupOption), nil
	}

	v, err, _ := l.sf.Do(key, func() (any, error) {
		// The load is shared by every collapsed caller and by the
		// cache, so the first caller's cancellation must not abort it.
		opts, err := l.gw.Options(context.WithoutCancel(ctx), rel)
		if err != nil {
			return nil, fmt.Errorf("load %s options: %w", rel, err)
		}
		if opts == nil {
			opts = []media.LookupOption{}
		}
		l.cache.SetDefault(key, opts)
		l.log.Debug("lookup options loaded", "relation", key, "count", len(opts))
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]media.LookupOption), nil
}

// Refresh invalidates the relation's cache entry and reloads it.
func (l *Loader) Refresh(ctx context.Context, rel gateway.Relation) ([]media.LookupOption, error) {
	l.Invalidate(rel)
	return l.Options(ctx, rel)
}

// Invalidate drops one relation's cached options.
func (l *Loader) Invalidate(rel gateway.Relation) {
	l.cache.Delete(rel.String())
}

// InvalidateAll drops every cached option list.
func (l *Loader) InvalidateAll() {
	l.cache.Flush()
}
