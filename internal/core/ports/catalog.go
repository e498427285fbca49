package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

// ErrCatalogUnavailable indicates the search service could not be reached or
// answered with a non-success status.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogUnavailableError provides context for a failed catalog call.
type CatalogUnavailableError struct {
	StatusCode int
	Err        error
}

func (e *CatalogUnavailableError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrCatalogUnavailable, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", ErrCatalogUnavailable, e.StatusCode)
	default:
		return ErrCatalogUnavailable.Error()
	}
}

func (e *CatalogUnavailableError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

// CatalogSearcher is the song-metadata search service.
type CatalogSearcher interface {
	SearchRecordings(ctx context.Context, filter domain.SearchFilter, offset, limit int) ([]domain.CatalogEntry, int, error)
	GetRecording(ctx context.Context, id string) (domain.CatalogEntry, error)
}

// CoverArtProvider looks up release artwork. An empty URL with a nil error
// means the release has no art.
type CoverArtProvider interface {
	FetchCoverArt(ctx context.Context, releaseID string) (string, error)
}
