package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by update/delete operations when the target
// entity has no matching row.
var ErrNotFound = errors.New("not found")

// DecodeError marks a persisted row that could not be decoded. Bulk reads
// skip such rows; single-entity reads surface the error.
type DecodeError struct {
	Entity string
	ID     string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s %s: %v", e.Entity, e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
