package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSync = "last_sync"
)

// SaveLastSync saves the time of the last successful outbox flush
func (s *Storage) SaveLastSync(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним unix nanoseconds в big endian
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))

		if err := bucket.Put([]byte(keyLastSync), buf); err != nil {
			return fmt.Errorf("failed to save last sync: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the time of the last successful outbox flush
// Returns zero time if no flush has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, error) {
	var last time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastSync))
		if buf == nil {
			return nil
		}
		if len(buf) != 8 {
			return fmt.Errorf("corrupted last sync value: %d bytes", len(buf))
		}

		last = time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
		return nil
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync: %w", err)
	}

	return last, nil
}
