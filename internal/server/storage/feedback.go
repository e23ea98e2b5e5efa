package storage

import (
	"context"

	"github.com/iudanet/qrfeedback/internal/models"
)

// FeedbackStorage defines interface for feedback persistence
type FeedbackStorage interface {
	// CreateFeedback stores a feedback entry
	// Phone must already be stripped to digits
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error

	// GetFeedback retrieves a feedback entry by ID
	// Returns ErrFeedbackNotFound if entry doesn't exist
	GetFeedback(ctx context.Context, feedbackID string) (*models.Feedback, error)

	// ListFeedbackByArea returns the newest entries of the area, at most limit
	// limit <= 0 means no limit
	ListFeedbackByArea(ctx context.Context, areaID string, limit int) ([]*models.Feedback, error)
}
