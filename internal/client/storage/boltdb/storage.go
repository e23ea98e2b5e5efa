package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketOutbox   = []byte("outbox")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Timeout: второй процесс клиента не должен зависать на file lock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketOutbox, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
