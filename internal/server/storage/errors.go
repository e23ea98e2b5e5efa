package storage

import "errors"

// Common storage errors
var (
	// ErrAreaNotFound indicates that area was not found in storage
	ErrAreaNotFound = errors.New("area not found")

	// ErrAreaAlreadyExists indicates that area with this slug already exists
	ErrAreaAlreadyExists = errors.New("area already exists")

	// ErrFeedbackNotFound indicates that feedback entry was not found
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this phone already exists
	ErrUserAlreadyExists = errors.New("user already exists")
)
