package domain

import (
	"strings"
	"time"
)

const (
	// AnonymousUser is the author recorded when the UI supplies none.
	AnonymousUser = "Anonymous User"
	// DefaultPlaylistName is used when a draft is published without a name.
	DefaultPlaylistName = "My Playlist"
)

// Vote is the single implicit viewer's current vote on a playlist.
type Vote string

const (
	VoteNone Vote = "none"
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Draft is the unpublished track collection the UI hands to the store.
type Draft struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Author      string  `json:"author"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Tracks      []Track `json:"tracks"`
}

// Playlist is the published, votable unit of the feed.
//
// ViewerVote records one viewer only. A multi-user deployment needs a
// per-(user, playlist) ledger with counters derived from it.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Tracks      []Track   `json:"tracks"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	ViewerVote  Vote      `json:"viewerVote"`
}

// NewPlaylist materializes a draft. It fails with a ValidationError when the
// draft has no tracks or when id is blank.
func NewPlaylist(id string, d Draft, now time.Time) (*Playlist, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "cannot be empty"}
	}
	if len(d.Tracks) == 0 {
		return nil, &ValidationError{Field: "tracks", Reason: "must contain at least one track"}
	}

	tracks := make([]Track, len(d.Tracks))
	copy(tracks, d.Tracks)

	return &Playlist{
		ID:          id,
		Name:        fallback(strings.TrimSpace(d.Name), DefaultPlaylistName),
		Description: strings.TrimSpace(d.Description),
		Author:      fallback(strings.TrimSpace(d.Author), AnonymousUser),
		CoverImage:  d.CoverImage,
		Tracks:      tracks,
		Comments:    []Comment{},
		CreatedAt:   now,
		ViewerVote:  VoteNone,
	}, nil
}

// Upvote applies one transition of the viewer vote machine:
// none->up, up->none (retract), down->up (switch).
func (p *Playlist) Upvote() {
	switch p.ViewerVote {
	case VoteUp:
		p.Upvotes = decrement(p.Upvotes)
		p.ViewerVote = VoteNone
	case VoteDown:
		p.Downvotes = decrement(p.Downvotes)
		p.Upvotes++
		p.ViewerVote = VoteUp
	default:
		p.Upvotes++
		p.ViewerVote = VoteUp
	}
}

// Downvote mirrors Upvote: none->down, down->none (retract), up->down (switch).
func (p *Playlist) Downvote() {
	switch p.ViewerVote {
	case VoteDown:
		p.Downvotes = decrement(p.Downvotes)
		p.ViewerVote = VoteNone
	case VoteUp:
		p.Upvotes = decrement(p.Upvotes)
		p.Downvotes++
		p.ViewerVote = VoteDown
	default:
		p.Downvotes++
		p.ViewerVote = VoteDown
	}
}

// AddComment appends c, keeping insertion order.
func (p *Playlist) AddComment(c Comment) {
	p.Comments = append(p.Comments, c)
}

// Score is upvotes minus downvotes.
func (p Playlist) Score() int {
	return p.Upvotes - p.Downvotes
}

// Clone returns a deep copy whose slices share nothing with p.
func (p Playlist) Clone() Playlist {
	out := p
	out.Tracks = make([]Track, len(p.Tracks))
	copy(out.Tracks, p.Tracks)
	out.Comments = make([]Comment, len(p.Comments))
	copy(out.Comments, p.Comments)
	return out
}

// counters never go below zero
func decrement(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
