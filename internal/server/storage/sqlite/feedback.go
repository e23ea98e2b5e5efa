package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/server/storage"
)

// CreateFeedback stores a feedback entry
// Returns ErrAreaNotFound if area_id references a missing area
func (s *Storage) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (id, area_id, rating, comment, name, phone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		feedback.ID,
		feedback.AreaID,
		feedback.Rating,
		feedback.Comment,
		feedback.Name,
		feedback.Phone,
		toUnix(feedback.CreatedAt),
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return storage.ErrAreaNotFound
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	return nil
}

// GetFeedback retrieves a feedback entry by ID
func (s *Storage) GetFeedback(ctx context.Context, feedbackID string) (*models.Feedback, error) {
	query := `
		SELECT id, area_id, rating, comment, name, phone, created_at
		FROM feedback
		WHERE id = ?
	`

	fb, err := scanFeedback(s.db.QueryRowContext(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return fb, nil
}

// ListFeedbackByArea returns the newest entries of the area
func (s *Storage) ListFeedbackByArea(ctx context.Context, areaID string, limit int) ([]*models.Feedback, error) {
	// В SQLite LIMIT -1 означает "без ограничения"
	if limit <= 0 {
		limit = -1
	}

	query := `
		SELECT id, area_id, rating, comment, name, phone, created_at
		FROM feedback
		WHERE area_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, areaID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func scanFeedback(row scanner) (*models.Feedback, error) {
	fb := &models.Feedback{}
	var createdAt int64

	if err := row.Scan(
		&fb.ID,
		&fb.AreaID,
		&fb.Rating,
		&fb.Comment,
		&fb.Name,
		&fb.Phone,
		&createdAt,
	); err != nil {
		return nil, err
	}

	fb.CreatedAt = fromUnix(createdAt)
	return fb, nil
}
