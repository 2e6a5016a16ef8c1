package ports

import "errors"

// Storage-level sentinel errors shared by all repository implementations.
var (
	ErrDuplicateEmail = errors.New("email already registered")
)
