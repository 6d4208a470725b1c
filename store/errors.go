package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by id matches no task. It is a
// logical outcome, not a failure: callers are expected to test for it with
// errors.Is and recover.
var ErrNotFound = errors.New("task not found")

// StorageError wraps a failure to read or write the backing file. Read
// failures are recoverable (the store falls back to an empty collection);
// write failures leave the in-memory collection intact but un-persisted.
type StorageError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
