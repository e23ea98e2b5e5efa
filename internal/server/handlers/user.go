package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/qrfeedback/internal/models"
	"github.com/iudanet/qrfeedback/internal/phonemask"
	"github.com/iudanet/qrfeedback/internal/server/storage"
	"github.com/iudanet/qrfeedback/internal/validation"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// UserHandler обрабатывает запросы по контактным лицам
type UserHandler struct {
	responder
	userStorage storage.UserStorage
}

// NewUserHandler создает новый handler контактных лиц
func NewUserHandler(logger *slog.Logger, userStorage storage.UserStorage) *UserHandler {
	return &UserHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
	}
}

// Create обрабатывает POST /api/v1/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     phonemask.StripMask(req.Phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("ddd", phonemask.DDD(user.Phone)))
			h.sendError(w, "phone already registered", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user created", slog.String("user_id", user.ID))

	h.sendJSON(w, toUserResponse(user), http.StatusCreated)
}

// Get обрабатывает GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")
	if err := uuid.Validate(userID); err != nil {
		h.sendError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toUserResponse(user), http.StatusOK)
}

// Lookup обрабатывает GET /api/v1/users?phone=...
// Номер принимается с маской или без
func (h *UserHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	phone := strings.TrimSpace(r.URL.Query().Get("phone"))
	if err := validation.ValidatePhone(phone); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByPhone(ctx, phonemask.StripMask(phone))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to look up user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toUserResponse(user), http.StatusOK)
}

func toUserResponse(user *models.User) api.UserResponse {
	return api.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     phonemask.ApplyMask(user.Phone),
		CreatedAt: user.CreatedAt,
	}
}
