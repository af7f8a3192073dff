package repositories

import "errors"

// Sentinel errors shared by all repositories. Handlers translate these to
// HTTP statuses with errors.Is.
var (
	// ErrNotFound means a referenced id does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument means the operation was called with an argument
	// the store rejects, e.g. a self-follow.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict means the operation would violate a uniqueness rule,
	// e.g. a duplicate user email.
	ErrConflict = errors.New("conflict")
)
