package services

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) SearchRecordings(ctx context.Context, filter domain.SearchFilter, offset, limit int) ([]domain.CatalogEntry, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	var entries []domain.CatalogEntry
	if v := args.Get(0); v != nil {
		entries = v.([]domain.CatalogEntry)
	}
	return entries, args.Int(1), args.Error(2)
}

func (m *mockSearcher) GetRecording(ctx context.Context, id string) (domain.CatalogEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CatalogEntry), args.Error(1)
}

// fakeArt answers from a release -> url table; releases listed in fail error out.
type fakeArt struct {
	mu    sync.Mutex
	urls  map[string]string
	fail  map[string]bool
	calls int
}

func (f *fakeArt) FetchCoverArt(ctx context.Context, releaseID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail[releaseID] {
		return "", errors.New("cover art service down")
	}
	return f.urls[releaseID], nil
}

func (f *fakeArt) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type memRepo struct {
	mu      sync.Mutex
	stored  map[string]string
	saves   int
	loadErr error
	saveErr error
}

func (r *memRepo) Load(ctx context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make(map[string]string, len(r.stored))
	for k, v := range r.stored {
		out[k] = v
	}
	return out, nil
}

func (r *memRepo) SaveAll(ctx context.Context, entries map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = entries
	return nil
}

func (r *memRepo) Snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stored
}

// syncDispatcher runs jobs inline so tests observe completed lookups.
type syncDispatcher struct {
	resolver ports.CoverArtResolver
	reject   bool
	jobs     []ports.ArtJob
}

func (d *syncDispatcher) Submit(job ports.ArtJob) bool {
	if d.reject {
		return false
	}
	d.jobs = append(d.jobs, job)
	d.resolver.ResolveCoverArt(context.Background(), job.EntryID, job.ReleaseID)
	return true
}

// queueDispatcher records jobs without running them.
type queueDispatcher struct {
	jobs []ports.ArtJob
}

func (d *queueDispatcher) Submit(job ports.ArtJob) bool {
	d.jobs = append(d.jobs, job)
	return true
}
