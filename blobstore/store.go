package blobstore

import (
	"context"
	"errors"
	"os"
)

// ErrNotFound is returned when a named artifact does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned when a name cannot be mapped into the store,
// e.g. an empty name or one that escapes the root.
var ErrInvalidName = errors.New("blobstore: invalid name")

// Store persists short, whole-object artifacts by name.
//
// Put must replace the object atomically: a concurrent Get observes either
// the previous or the new content, never a mixture.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the full content of name.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put atomically replaces the content of name.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error
}
