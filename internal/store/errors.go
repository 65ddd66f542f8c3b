package store

import "errors"

// ErrNotFound is returned when a row scoped to the caller's workspace
// does not exist.
var ErrNotFound = errors.New("not found")
