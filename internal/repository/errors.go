package repository

import "errors"

// ErrNotFound is returned by Update when the target row does not exist.
// Callers must treat the operation as non-recoverable and re-fetch.
var ErrNotFound = errors.New("record not found")
