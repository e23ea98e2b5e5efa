package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/qrfeedback/internal/client/storage"
)

// SavePending stores or updates an outbox item
// IDs are UUIDv7, so key order equals creation order
func (s *Storage) SavePending(ctx context.Context, item *storage.PendingFeedback) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal pending feedback: %w", err)
		}

		if err := bucket.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save pending feedback: %w", err)
		}

		return nil
	})
}

// GetPending retrieves an outbox item by ID
func (s *Storage) GetPending(ctx context.Context, id string) (*storage.PendingFeedback, error) {
	var item *storage.PendingFeedback

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrPendingNotFound
		}

		item = &storage.PendingFeedback{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal pending feedback: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListPending returns all outbox items, oldest first
func (s *Storage) ListPending(ctx context.Context) ([]*storage.PendingFeedback, error) {
	var items []*storage.PendingFeedback

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &storage.PendingFeedback{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal pending feedback %s: %w", k, err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// DeletePending removes an outbox item
func (s *Storage) DeletePending(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		key := []byte(id)
		if bucket.Get(key) == nil {
			return storage.ErrPendingNotFound
		}

		return bucket.Delete(key)
	})
}
