package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		toUnix(user.CreatedAt),
	)

	if err != nil {
		// Проверяем на duplicate phone
		if isUniqueViolation(err) {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM users
		WHERE id = ?
	`
	return s.getUser(ctx, query, userID)
}

// GetUserByPhone retrieves user by phone digits
func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM users
		WHERE phone = ?
	`
	return s.getUser(ctx, query, phone)
}

func (s *Storage) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.CreatedAt = fromUnix(createdAt)
	return user, nil
}
