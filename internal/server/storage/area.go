package storage

import (
	"context"

	"github.com/iudanet/qrfeedback/internal/models"
)

// AreaStorage defines interface for area persistence
type AreaStorage interface {
	// CreateArea creates a new area
	// Returns ErrAreaAlreadyExists if slug is taken
	CreateArea(ctx context.Context, area *models.Area) error

	// GetAreaByID retrieves area by ID
	// Returns ErrAreaNotFound if area doesn't exist
	GetAreaByID(ctx context.Context, areaID string) (*models.Area, error)

	// GetAreaBySlug retrieves area by its QR slug
	// Returns ErrAreaNotFound if area doesn't exist
	GetAreaBySlug(ctx context.Context, slug string) (*models.Area, error)

	// ListAreas returns all areas ordered by name
	ListAreas(ctx context.Context) ([]*models.Area, error)
}
