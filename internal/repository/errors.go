package repository

import "errors"

// Common repository errors
var (
	// ErrEmptyKey is returned when a blob is loaded or saved without a key
	ErrEmptyKey = errors.New("storage key is empty")
)
