package store

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when an update targets an unknown ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrPersist is returned when the in-memory change was applied but
	// saving the collection failed.
	ErrPersist = errors.New("failed to persist tasks")
)

// CorruptStateError is returned by Open when the stored blob cannot be
// decoded into a valid task collection.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt task state under key %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}
