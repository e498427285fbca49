package services

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7, so ids sort in generation order even
// when several are minted within the same millisecond.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
