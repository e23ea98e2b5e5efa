// Package outbox хранит отзывы локально до успешной доставки на сервер.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/qrfeedback/internal/client/api"
	"github.com/iudanet/qrfeedback/internal/client/storage"
	"github.com/iudanet/qrfeedback/internal/phonemask"
	"github.com/iudanet/qrfeedback/internal/validation"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// Submitter отправляет отзыв на сервер
type Submitter interface {
	SubmitFeedback(ctx context.Context, slug string, req api.SubmitFeedbackRequest) (*api.FeedbackResponse, error)
}

// Storage объединяет outbox и metadata хранилища клиента
type Storage interface {
	storage.OutboxStorage
	storage.MetadataStorage
}

// FlushResult contains flush operation results
type FlushResult struct {
	Sent    int // доставлено и удалено из outbox
	Dropped int // отклонено сервером окончательно и удалено
	Failed  int // временная ошибка, останется для следующей попытки
}

// Service управляет очередью неотправленных отзывов
type Service struct {
	submitter Submitter
	store     Storage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new outbox service
func NewService(submitter Submitter, store Storage, logger *slog.Logger) *Service {
	return &Service{
		submitter: submitter,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Enqueue проверяет отзыв и сохраняет его в outbox.
// Телефон сохраняется без маски.
func (s *Service) Enqueue(ctx context.Context, slug string, req api.SubmitFeedbackRequest) (*storage.PendingFeedback, error) {
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("invalid area: %w", err)
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	req.Phone = phonemask.StripMask(req.Phone)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	item := &storage.PendingFeedback{
		ID:        id.String(),
		AreaSlug:  slug,
		Request:   req,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.SavePending(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save pending feedback: %w", err)
	}

	s.logger.Debug("Feedback queued",
		"id", item.ID,
		"area", slug,
		"ddd", phonemask.DDD(req.Phone))

	return item, nil
}

// Pending возвращает неотправленные отзывы, старые первыми
func (s *Service) Pending(ctx context.Context) ([]*storage.PendingFeedback, error) {
	items, err := s.store.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending feedback: %w", err)
	}
	return items, nil
}

// LastSync возвращает время последней полной доставки
func (s *Service) LastSync(ctx context.Context) (time.Time, error) {
	return s.store.GetLastSync(ctx)
}

// Flush отправляет все отзывы из outbox.
// 4xx (кроме 408/429) удаляет запись, остальные ошибки оставляют ее для повтора.
// Ошибка контекста прерывает отправку.
func (s *Service) Flush(ctx context.Context) (*FlushResult, error) {
	items, err := s.store.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending feedback: %w", err)
	}

	s.logger.Info("Flushing outbox", "count", len(items))

	result := &FlushResult{}
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		_, err := s.submitter.SubmitFeedback(ctx, item.AreaSlug, item.Request)
		switch {
		case err == nil:
			if err := s.store.DeletePending(ctx, item.ID); err != nil && !errors.Is(err, storage.ErrPendingNotFound) {
				return result, fmt.Errorf("failed to delete delivered feedback %s: %w", item.ID, err)
			}
			result.Sent++

		case httpClient.IsPermanent(err):
			s.logger.Warn("Feedback rejected by server, dropping",
				"id", item.ID,
				"area", item.AreaSlug,
				"error", err)
			if err := s.store.DeletePending(ctx, item.ID); err != nil && !errors.Is(err, storage.ErrPendingNotFound) {
				return result, fmt.Errorf("failed to delete rejected feedback %s: %w", item.ID, err)
			}
			result.Dropped++

		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			item.Attempts++
			item.LastError = err.Error()
			s.logger.Warn("Feedback delivery failed",
				"id", item.ID,
				"attempts", item.Attempts,
				"error", err)
			if err := s.store.SavePending(ctx, item); err != nil {
				return result, fmt.Errorf("failed to update pending feedback %s: %w", item.ID, err)
			}
			result.Failed++
		}
	}

	if result.Failed == 0 {
		if err := s.store.SaveLastSync(ctx, s.now().UTC()); err != nil {
			s.logger.Warn("Failed to save last sync time", "error", err)
		}
	}

	s.logger.Info("Outbox flushed",
		"sent", result.Sent,
		"dropped", result.Dropped,
		"failed", result.Failed)

	return result, nil
}
