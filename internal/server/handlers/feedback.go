package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/phonemask"
	"github.com/iudanet/qrfeedback/internal/server/storage"
	"github.com/iudanet/qrfeedback/internal/validation"
	"github.com/iudanet/qrfeedback/pkg/api"
)

const (
	defaultFeedbackLimit = 50
	maxFeedbackLimit     = 500
)

// FeedbackHandler обрабатывает отзывы, оставленные по QR-коду
type FeedbackHandler struct {
	responder
	areaStorage     storage.AreaStorage
	feedbackStorage storage.FeedbackStorage
}

// NewFeedbackHandler создает новый handler отзывов
func NewFeedbackHandler(logger *slog.Logger, areaStorage storage.AreaStorage, feedbackStorage storage.FeedbackStorage) *FeedbackHandler {
	return &FeedbackHandler{
		responder:       responder{logger: logger},
		areaStorage:     areaStorage,
		feedbackStorage: feedbackStorage,
	}
}

// Submit обрабатывает POST /api/v1/areas/{slug}/feedback
// Телефон принимается с маской или без, сохраняются только цифры
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	area, ok := lookupArea(w, r, h.responder, h.areaStorage)
	if !ok {
		return
	}

	var req api.SubmitFeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode feedback request", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Comment = strings.TrimSpace(req.Comment)
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid feedback",
			slog.String("slug", area.Slug),
			slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	fb := &models.Feedback{
		ID:        uuid.New().String(),
		AreaID:    area.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Name:      req.Name,
		Phone:     phonemask.StripMask(req.Phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.feedbackStorage.CreateFeedback(ctx, fb); err != nil {
		if errors.Is(err, storage.ErrAreaNotFound) {
			h.sendError(w, "area not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create feedback", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Номер целиком в лог не пишем, только DDD
	h.logger.InfoContext(ctx, "feedback received",
		slog.String("feedback_id", fb.ID),
		slog.String("slug", area.Slug),
		slog.Int("rating", fb.Rating),
		slog.Bool("has_phone", fb.HasPhone()),
		slog.String("ddd", phonemask.DDD(fb.Phone)))

	h.sendJSON(w, toFeedbackResponse(area, fb), http.StatusCreated)
}

// List обрабатывает GET /api/v1/areas/{slug}/feedback?limit=N
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	area, ok := lookupArea(w, r, h.responder, h.areaStorage)
	if !ok {
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.feedbackStorage.ListFeedbackByArea(ctx, area.ID, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list feedback", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListFeedbackResponse{
		Feedback: make([]api.FeedbackResponse, 0, len(entries)),
		Count:    len(entries),
	}
	for _, fb := range entries {
		resp.Feedback = append(resp.Feedback, toFeedbackResponse(area, fb))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/feedback/{id}
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feedbackID := r.PathValue("id")
	if err := uuid.Validate(feedbackID); err != nil {
		h.sendError(w, "invalid feedback id", http.StatusBadRequest)
		return
	}

	fb, err := h.feedbackStorage.GetFeedback(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, storage.ErrFeedbackNotFound) {
			h.sendError(w, "feedback not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get feedback", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	area, err := h.areaStorage.GetAreaByID(ctx, fb.AreaID)
	if err != nil {
		// отзыв без зоны означает нарушенную ссылочную целостность
		h.logger.ErrorContext(ctx, "failed to get feedback area",
			slog.String("feedback_id", fb.ID),
			slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toFeedbackResponse(area, fb), http.StatusOK)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultFeedbackLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.New("limit must be a positive integer")
	}

	return min(limit, maxFeedbackLimit), nil
}

func toFeedbackResponse(area *models.Area, fb *models.Feedback) api.FeedbackResponse {
	resp := api.FeedbackResponse{
		ID:        fb.ID,
		AreaSlug:  area.Slug,
		Rating:    fb.Rating,
		Comment:   fb.Comment,
		Name:      fb.Name,
		CreatedAt: fb.CreatedAt,
	}
	if fb.HasPhone() {
		resp.Phone = fb.MaskedPhone()
	}
	return resp
}
