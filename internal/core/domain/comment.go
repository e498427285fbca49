package domain

import (
	"strings"
	"time"
)

// Comment is an append-only remark on a published playlist.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewComment trims text and rejects it when nothing is left.
func NewComment(id, author, text string, now time.Time) (Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Comment{}, &ValidationError{Field: "text", Reason: "cannot be empty"}
	}
	return Comment{
		ID:        id,
		Author:    fallback(strings.TrimSpace(author), AnonymousUser),
		Text:      text,
		CreatedAt: now,
	}, nil
}
