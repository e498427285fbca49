package ports

import (
	"context"
)

// ArtJob asks for the cover art of one catalog entry.
type ArtJob struct {
	EntryID   string
	ReleaseID string
}

// CoverArtResolver resolves and caches art for a single entry.
type CoverArtResolver interface {
	ResolveCoverArt(ctx context.Context, entryID, releaseID string) (string, bool)
}

// ArtDispatcher runs art jobs in the background. Submit reports false when
// the job was not queued.
type ArtDispatcher interface {
	Submit(job ArtJob) bool
}
