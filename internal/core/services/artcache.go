package services

import (
	"context"
	"log"
	"sync"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// ArtCache maps catalog entry ids to cover art URLs and tracks which entries
// have a lookup in flight. Writes are disjoint by key. The full mapping is
// persisted after every update.
//
// TODO: bound the mapping (LRU or TTL); it currently grows for the life of the
// persisted store.
type ArtCache struct {
	mu      sync.RWMutex
	urls    map[string]string
	loading map[string]bool

	repo   ports.ArtCacheRepository
	saveMu sync.Mutex
}

// NewArtCache loads the persisted mapping. A load failure is logged and the
// cache starts empty. repo may be nil for a memory-only cache.
func NewArtCache(ctx context.Context, repo ports.ArtCacheRepository) *ArtCache {
	c := &ArtCache{
		urls:    make(map[string]string),
		loading: make(map[string]bool),
		repo:    repo,
	}
	if repo == nil {
		return c
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		log.Printf("WARN art cache: load failed, starting empty: %v", err)
		return c
	}
	for k, v := range stored {
		if k != "" && v != "" {
			c.urls[k] = v
		}
	}
	log.Printf("art cache: loaded %d entries", len(c.urls))
	return c
}

// Get returns the cached URL for an entry.
func (c *ArtCache) Get(entryID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.urls[entryID]
	return url, ok
}

// Set stores url for entryID and writes the whole mapping back.
func (c *ArtCache) Set(ctx context.Context, entryID, url string) {
	if entryID == "" || url == "" {
		return
	}
	c.mu.Lock()
	c.urls[entryID] = url
	c.mu.Unlock()

	c.persist(ctx)
}

// MarkLoading flags entryID as having a lookup in flight. It returns false
// when the entry is already cached or already loading.
func (c *ArtCache) MarkLoading(entryID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, cached := c.urls[entryID]; cached {
		return false
	}
	if c.loading[entryID] {
		return false
	}
	c.loading[entryID] = true
	return true
}

// ClearLoading drops the in-flight flag for entryID.
func (c *ArtCache) ClearLoading(entryID string) {
	c.mu.Lock()
	delete(c.loading, entryID)
	c.mu.Unlock()
}

// Status reports the cached URL and loading flag for each id.
func (c *ArtCache) Status(ids []string) map[string]domain.ArtStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]domain.ArtStatus, len(ids))
	for _, id := range ids {
		out[id] = domain.ArtStatus{URL: c.urls[id], Loading: c.loading[id]}
	}
	return out
}

// Len is the number of cached URLs.
func (c *ArtCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}

func (c *ArtCache) snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.urls))
	for k, v := range c.urls {
		out[k] = v
	}
	return out
}

// persist serializes writers so a stale snapshot never overwrites a newer one.
func (c *ArtCache) persist(ctx context.Context) {
	if c.repo == nil {
		return
	}
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if err := c.repo.SaveAll(ctx, c.snapshot()); err != nil {
		log.Printf("WARN art cache: save failed: %v", err)
	}
}
