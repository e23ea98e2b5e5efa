package storage

import "errors"

// Common client storage errors
var (
	// ErrPendingNotFound indicates that outbox item was not found
	ErrPendingNotFound = errors.New("pending feedback not found")
)
