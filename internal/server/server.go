// Package server собирает HTTP роутер сервиса отзывов.
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/qrfeedback/internal/server/handlers"
	"github.com/iudanet/qrfeedback/internal/server/middleware"
	"github.com/iudanet/qrfeedback/internal/server/storage"
)

// Storage объединяет все хранилища, нужные роутеру
type Storage interface {
	storage.AreaStorage
	storage.FeedbackStorage
	storage.UserStorage
	handlers.Pinger
}

// Options описывает зависимости роутера
type Options struct {
	Logger      *slog.Logger
	Storage     Storage
	RateLimiter *middleware.RateLimiter // ограничивает только отправку отзывов
	PublicURL   string
	Version     string
}

// NewRouter регистрирует все маршруты API v1
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger

	health := handlers.NewHealthHandler(logger, opts.Storage, opts.Version)
	phone := handlers.NewPhoneHandler(logger)
	areas := handlers.NewAreaHandler(logger, opts.Storage, opts.PublicURL)
	feedback := handlers.NewFeedbackHandler(logger, opts.Storage, opts.Storage)
	users := handlers.NewUserHandler(logger, opts.Storage)

	submit := http.Handler(http.HandlerFunc(feedback.Submit))
	if opts.RateLimiter != nil {
		submit = opts.RateLimiter.Middleware(logger)(submit)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", health.Health)
	mux.HandleFunc("POST /api/v1/phone/mask", phone.Mask)

	mux.HandleFunc("POST /api/v1/areas", areas.Create)
	mux.HandleFunc("GET /api/v1/areas", areas.List)
	mux.HandleFunc("GET /api/v1/areas/{slug}", areas.Get)

	mux.Handle("POST /api/v1/areas/{slug}/feedback", submit)
	mux.HandleFunc("GET /api/v1/areas/{slug}/feedback", feedback.List)
	mux.HandleFunc("GET /api/v1/feedback/{id}", feedback.Get)

	mux.HandleFunc("POST /api/v1/users", users.Create)
	mux.HandleFunc("GET /api/v1/users", users.Lookup)
	mux.HandleFunc("GET /api/v1/users/{id}", users.Get)

	// Порядок: recovery ближе к обработчику, логирование снаружи
	var h http.Handler = mux
	h = middleware.RecoveryMiddleware(logger)(h)
	h = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/api/v1/phone/mask"})(h)

	return h
}
