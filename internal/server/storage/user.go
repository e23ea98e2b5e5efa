package storage

import (
	"context"

	"github.com/iudanet/qrfeedback/internal/models"
)

// UserStorage defines interface for contact persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if phone is already registered
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// GetUserByPhone retrieves user by phone digits
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
}
