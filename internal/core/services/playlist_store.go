package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/vaibhavuttam8/jam-rating/internal/core/domain"
)

// PlaylistStore is the in-memory authority over published playlists, the
// viewer's votes and comments. Every read hands out deep copies; state only
// changes through the store's methods.
type PlaylistStore struct {
	mu        sync.RWMutex
	playlists []*domain.Playlist // creation order, oldest first
	byID      map[string]*domain.Playlist

	now   func() time.Time
	newID func() string
}

// StoreOption configures a PlaylistStore.
type StoreOption func(*PlaylistStore)

// WithClock overrides the time source used for createdAt stamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *PlaylistStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source for playlists and comments.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *PlaylistStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewPlaylistStore constructs an empty store.
func NewPlaylistStore(opts ...StoreOption) *PlaylistStore {
	s := &PlaylistStore{
		byID:  make(map[string]*domain.Playlist),
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create publishes a draft at the front of the feed.
func (s *PlaylistStore) Create(d domain.Draft) (domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if _, taken := s.byID[id]; taken {
		return domain.Playlist{}, fmt.Errorf("service: playlist id %q already issued", id)
	}

	p, err := domain.NewPlaylist(id, d, s.now())
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("service: invalid draft: %w", err)
	}

	s.playlists = append(s.playlists, p)
	s.byID[p.ID] = p
	return p.Clone(), nil
}

// List returns the feed newest-first.
func (s *PlaylistStore) List() []domain.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Playlist, 0, len(s.playlists))
	for i := len(s.playlists) - 1; i >= 0; i-- {
		out = append(out, s.playlists[i].Clone())
	}
	return out
}

// Get returns a single playlist.
func (s *PlaylistStore) Get(id string) (domain.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Playlist{}, notFound(id)
	}
	return p.Clone(), nil
}

// Len reports how many playlists have been published.
func (s *PlaylistStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.playlists)
}

// Upvote toggles the viewer's up vote.
func (s *PlaylistStore) Upvote(id string) (domain.Playlist, error) {
	return s.vote(id, (*domain.Playlist).Upvote)
}

// Downvote toggles the viewer's down vote.
func (s *PlaylistStore) Downvote(id string) (domain.Playlist, error) {
	return s.vote(id, (*domain.Playlist).Downvote)
}

func (s *PlaylistStore) vote(id string, apply func(*domain.Playlist)) (domain.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Playlist{}, notFound(id)
	}
	apply(p)
	return p.Clone(), nil
}

// AddComment appends a comment to the playlist's thread.
func (s *PlaylistStore) AddComment(playlistID, author, text string) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[playlistID]
	if !ok {
		return domain.Comment{}, notFound(playlistID)
	}

	c, err := domain.NewComment(s.newID(), author, text, s.now())
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service: invalid comment: %w", err)
	}
	p.AddComment(c)
	return c, nil
}

func notFound(id string) error {
	return fmt.Errorf("service: playlist %q: %w", id, domain.ErrNotFound)
}
