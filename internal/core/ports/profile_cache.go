package ports

import "context"

// ProfileCache is a read-through cache for public profile documents, keyed by
// profile kind and document ID.
type ProfileCache interface {
	// Get decodes the cached document into dst. It reports false on a miss.
	Get(ctx context.Context, kind, id string, dst any) (bool, error)
	Set(ctx context.Context, kind, id string, doc any) error
	// SetIfAbsent stores doc only when no entry exists, so a read that raced
	// an update cannot replace the newer document.
	SetIfAbsent(ctx context.Context, kind, id string, doc any) error
	Delete(ctx context.Context, kind, id string) error
}
