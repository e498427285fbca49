package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

const (
	// DefaultPageSize matches the ten results per page the search UI shows.
	DefaultPageSize = 10
	// MaxPageSize is the largest limit the catalog accepts.
	MaxPageSize = 100
)

// CatalogService searches the catalog and resolves cover art through the
// art cache. It has no dependency on the playlist store.
type CatalogService struct {
	searcher   ports.CatalogSearcher
	art        ports.CoverArtProvider
	cache      *ArtCache
	dispatcher ports.ArtDispatcher

	lookups  singleflight.Group
	pageSize int
	newID    func() string
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithDefaultPageSize sets the page size used when a caller passes none.
func WithDefaultPageSize(n int) CatalogOption {
	return func(s *CatalogService) {
		if n > 0 && n <= MaxPageSize {
			s.pageSize = n
		}
	}
}

// WithTrackIDGenerator overrides the suffix source for draft track ids.
func WithTrackIDGenerator(newID func() string) CatalogOption {
	return func(s *CatalogService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewCatalogService constructs a CatalogService. cache may be nil, in which
// case a memory-only cache is used.
func NewCatalogService(searcher ports.CatalogSearcher, art ports.CoverArtProvider, cache *ArtCache, opts ...CatalogOption) *CatalogService {
	if cache == nil {
		cache = NewArtCache(context.Background(), nil)
	}
	s := &CatalogService{
		searcher: searcher,
		art:      art,
		cache:    cache,
		pageSize: DefaultPageSize,
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UseDispatcher routes art lookups through d (normally the worker pool).
// Without one, each lookup runs on its own goroutine.
func (s *CatalogService) UseDispatcher(d ports.ArtDispatcher) {
	s.dispatcher = d
}

// Search returns one page of catalog matches for the non-blank filter fields
// and starts cover art lookups for the page. An all-blank filter returns an
// empty page without calling the catalog.
func (s *CatalogService) Search(ctx context.Context, filter domain.SearchFilter, page, pageSize int) (domain.SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	out := domain.SearchPage{Results: []domain.CatalogEntry{}, Page: page, PageSize: pageSize}
	filter = filter.Trimmed()
	if filter.IsEmpty() {
		return out, nil
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.searcher.SearchRecordings(ctx, filter, offset, pageSize)
	if err != nil {
		log.Printf("WARN service: catalog search failed: %v", err)
		return domain.SearchPage{}, fmt.Errorf("service: search failed: %w", asUnavailable(err))
	}

	if entries != nil {
		out.Results = s.PrefetchCoverArt(entries)
	}
	out.TotalCount = total
	return out, nil
}

// PrefetchCoverArt dispatches one independent art lookup per entry that has a
// release and no cached art, and returns the entries annotated with their
// current art state. A failed lookup only affects its own entry.
func (s *CatalogService) PrefetchCoverArt(entries []domain.CatalogEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(entries))
	for i, e := range entries {
		if url, ok := s.cache.Get(e.ID); ok {
			e.CoverArtURL = url
			out[i] = e
			continue
		}

		releaseID := e.PrimaryReleaseID()
		if releaseID != "" && s.cache.MarkLoading(e.ID) {
			e.ArtLoading = s.dispatch(ports.ArtJob{EntryID: e.ID, ReleaseID: releaseID})
		} else {
			e.ArtLoading = s.cache.Status([]string{e.ID})[e.ID].Loading
		}
		out[i] = e
	}
	return out
}

func (s *CatalogService) dispatch(job ports.ArtJob) bool {
	if s.dispatcher == nil {
		go s.ResolveCoverArt(context.Background(), job.EntryID, job.ReleaseID)
		return true
	}
	if !s.dispatcher.Submit(job) {
		s.cache.ClearLoading(job.EntryID)
		return false
	}
	return true
}

// ResolveCoverArt returns the art URL for a catalog entry, checking the cache
// before the cover art service. ok is false when no art exists or the lookup
// failed; failures are logged, never returned. The entry's loading flag is
// cleared on return.
func (s *CatalogService) ResolveCoverArt(ctx context.Context, entryID, releaseID string) (string, bool) {
	defer s.cache.ClearLoading(entryID)

	if url, ok := s.cache.Get(entryID); ok {
		return url, true
	}
	if releaseID == "" || s.art == nil {
		return "", false
	}

	v, err, _ := s.lookups.Do(entryID, func() (any, error) {
		url, err := s.art.FetchCoverArt(ctx, releaseID)
		if err != nil {
			return "", err
		}
		if url != "" {
			s.cache.Set(ctx, entryID, url)
		}
		return url, nil
	})
	if err != nil {
		log.Printf("WARN service: cover art for %s (release %s): %v", entryID, releaseID, err)
		return "", false
	}

	url, _ := v.(string)
	return url, url != ""
}

// ArtStatus reports cached art and in-flight lookups for the given entries.
func (s *CatalogService) ArtStatus(ids []string) map[string]domain.ArtStatus {
	return s.cache.Status(ids)
}

// GetRecording looks up a single catalog entry by id.
func (s *CatalogService) GetRecording(ctx context.Context, id string) (domain.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.CatalogEntry{}, fmt.Errorf("service: %w", &domain.ValidationError{Field: "catalogId", Reason: "cannot be empty"})
	}

	entry, err := s.searcher.GetRecording(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CatalogEntry{}, fmt.Errorf("service: recording %q: %w", id, err)
		}
		return domain.CatalogEntry{}, fmt.Errorf("service: recording lookup failed: %w", asUnavailable(err))
	}

	if url, ok := s.cache.Get(entry.ID); ok {
		entry.CoverArtURL = url
	}
	return entry, nil
}

// NewDraftTrack builds a playlist track for a catalog entry the viewer just
// added. Every call yields a distinct track id.
func (s *CatalogService) NewDraftTrack(ctx context.Context, catalogID string) (domain.Track, error) {
	entry, err := s.GetRecording(ctx, catalogID)
	if err != nil {
		return domain.Track{}, err
	}
	return domain.NewTrack(entry, s.newID(), entry.CoverArtURL), nil
}

func asUnavailable(err error) error {
	if errors.Is(err, ports.ErrCatalogUnavailable) {
		return err
	}
	return &ports.CatalogUnavailableError{Err: err}
}
