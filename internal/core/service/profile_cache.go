package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/metrics"
)

// Cache failures never fail a request: the store stays the source of truth.

func profileCacheGet(ctx context.Context, cache ports.ProfileCache, log zerolog.Logger, kind, id string, dst any) bool {
	if cache == nil {
		return false
	}
	hit, err := cache.Get(ctx, kind, id, dst)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("profile cache read failed")
		metrics.ProfileCacheTotal.WithLabelValues(kind, "error").Inc()
		return false
	}
	if hit {
		metrics.ProfileCacheTotal.WithLabelValues(kind, "hit").Inc()
	} else {
		metrics.ProfileCacheTotal.WithLabelValues(kind, "miss").Inc()
	}
	return hit
}

// profileCacheFill stores a document read from the store. It never
// overwrites an entry, so a concurrent update's write wins.
func profileCacheFill(ctx context.Context, cache ports.ProfileCache, log zerolog.Logger, kind, id string, doc any) {
	if cache == nil {
		return
	}
	if err := cache.SetIfAbsent(ctx, kind, id, doc); err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("profile cache write failed")
	}
}

// profileCacheReplace writes the updated document over any cached copy and
// falls back to dropping the entry when the write fails.
func profileCacheReplace(ctx context.Context, cache ports.ProfileCache, log zerolog.Logger, kind, id string, doc any) {
	if cache == nil {
		return
	}
	err := cache.Set(ctx, kind, id, doc)
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("profile cache write failed")
	if err := cache.Delete(ctx, kind, id); err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("id", id).Msg("profile cache invalidation failed")
	}
}
