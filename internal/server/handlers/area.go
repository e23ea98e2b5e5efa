package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/server/storage"
	"github.com/iudanet/qrfeedback/internal/validation"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// AreaHandler обрабатывает запросы по зонам
type AreaHandler struct {
	responder
	areaStorage storage.AreaStorage
	publicURL   string
}

// NewAreaHandler создает новый handler зон
// publicURL - внешний адрес сервиса, из него строится URL для QR-кода
func NewAreaHandler(logger *slog.Logger, areaStorage storage.AreaStorage, publicURL string) *AreaHandler {
	return &AreaHandler{
		responder:   responder{logger: logger},
		areaStorage: areaStorage,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}
}

// Create обрабатывает POST /api/v1/areas
func (h *AreaHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateAreaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode area request", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	area := &models.Area{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.areaStorage.CreateArea(ctx, area); err != nil {
		if errors.Is(err, storage.ErrAreaAlreadyExists) {
			h.logger.WarnContext(ctx, "area already exists", slog.String("slug", req.Slug))
			h.sendError(w, "slug already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create area", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "area created",
		slog.String("area_id", area.ID),
		slog.String("slug", area.Slug))

	h.sendJSON(w, h.toResponse(area), http.StatusCreated)
}

// List обрабатывает GET /api/v1/areas
func (h *AreaHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	areas, err := h.areaStorage.ListAreas(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list areas", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListAreasResponse{Areas: make([]api.AreaResponse, 0, len(areas))}
	for _, area := range areas {
		resp.Areas = append(resp.Areas, h.toResponse(area))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/areas/{slug}
func (h *AreaHandler) Get(w http.ResponseWriter, r *http.Request) {
	area, ok := lookupArea(w, r, h.responder, h.areaStorage)
	if !ok {
		return
	}
	h.sendJSON(w, h.toResponse(area), http.StatusOK)
}

func (h *AreaHandler) toResponse(area *models.Area) api.AreaResponse {
	return api.AreaResponse{
		ID:          area.ID,
		Name:        area.Name,
		Slug:        area.Slug,
		Description: area.Description,
		FeedbackURL: h.publicURL + "/api/v1/areas/" + area.Slug + "/feedback",
		CreatedAt:   area.CreatedAt,
	}
}

// lookupArea извлекает slug из пути и загружает зону.
// При ошибке ответ уже отправлен и возвращается false.
func lookupArea(w http.ResponseWriter, r *http.Request, h responder, areas storage.AreaStorage) (*models.Area, bool) {
	ctx := r.Context()

	slug := r.PathValue("slug")
	if err := validation.ValidateSlug(slug); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	area, err := areas.GetAreaBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrAreaNotFound) {
			h.sendError(w, "area not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get area", slog.String("slug", slug), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return area, true
}
