package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a playlist or catalog entry does not exist.
	ErrNotFound = errors.New("domain: not found")
	// ErrValidation marks input the store rejects before touching any state.
	ErrValidation = errors.New("domain: validation failed")
)

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("domain: %s", e.Reason)
	}
	return fmt.Sprintf("domain: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
