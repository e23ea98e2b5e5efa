package storage

import (
	"context"
	"time"

	"github.com/iudanet/qrfeedback/pkg/api"
)

// PendingFeedback представляет отзыв, еще не доставленный на сервер
type PendingFeedback struct {
	CreatedAt time.Time                 `json:"created_at"`
	Request   api.SubmitFeedbackRequest `json:"request"`
	ID        string                    `json:"id"`
	AreaSlug  string                    `json:"area_slug"`
	LastError string                    `json:"last_error,omitempty"`
	Attempts  int                       `json:"attempts"`
}

// OutboxStorage defines interface for feedback waiting to be delivered
type OutboxStorage interface {
	// SavePending stores or updates an outbox item
	SavePending(ctx context.Context, item *PendingFeedback) error

	// GetPending retrieves an outbox item by ID
	// Returns ErrPendingNotFound if item doesn't exist
	GetPending(ctx context.Context, id string) (*PendingFeedback, error)

	// ListPending returns all outbox items, oldest first
	ListPending(ctx context.Context) ([]*PendingFeedback, error)

	// DeletePending removes an outbox item
	// Returns ErrPendingNotFound if item doesn't exist
	DeletePending(ctx context.Context, id string) error
}
