package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/server/storage"
)

// CreateArea creates a new area
func (s *Storage) CreateArea(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (id, name, slug, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		area.ID,
		area.Name,
		area.Slug,
		area.Description,
		toUnix(area.CreatedAt),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAreaAlreadyExists
		}
		return fmt.Errorf("failed to insert area: %w", err)
	}

	return nil
}

// GetAreaByID retrieves area by ID
func (s *Storage) GetAreaByID(ctx context.Context, areaID string) (*models.Area, error) {
	query := `
		SELECT id, name, slug, description, created_at
		FROM areas
		WHERE id = ?
	`
	return s.scanArea(s.db.QueryRowContext(ctx, query, areaID))
}

// GetAreaBySlug retrieves area by its QR slug
func (s *Storage) GetAreaBySlug(ctx context.Context, slug string) (*models.Area, error) {
	query := `
		SELECT id, name, slug, description, created_at
		FROM areas
		WHERE slug = ?
	`
	return s.scanArea(s.db.QueryRowContext(ctx, query, slug))
}

// ListAreas returns all areas ordered by name
func (s *Storage) ListAreas(ctx context.Context) ([]*models.Area, error) {
	query := `
		SELECT id, name, slug, description, created_at
		FROM areas
		ORDER BY name, slug
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query areas: %w", err)
	}
	defer rows.Close()

	var areas []*models.Area
	for rows.Next() {
		area, err := s.scanArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return areas, nil
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanArea(row scanner) (*models.Area, error) {
	area := &models.Area{}
	var createdAt int64

	err := row.Scan(
		&area.ID,
		&area.Name,
		&area.Slug,
		&area.Description,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAreaNotFound
		}
		return nil, fmt.Errorf("failed to scan area: %w", err)
	}

	area.CreatedAt = fromUnix(createdAt)
	return area, nil
}
