package storage

import (
	"context"
	"time"
)

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSync saves the time of the last successful outbox flush
	SaveLastSync(ctx context.Context, t time.Time) error

	// GetLastSync retrieves the time of the last successful outbox flush
	// Returns zero time if no flush has been performed yet
	GetLastSync(ctx context.Context) (time.Time, error)
}
