package ports

import (
	"context"
)

// ArtCacheRepository persists the entry-id -> image-URL mapping. The whole
// mapping is read at startup and rewritten on every update.
type ArtCacheRepository interface {
	Load(ctx context.Context) (map[string]string, error)
	SaveAll(ctx context.Context, entries map[string]string) error
}
