package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/qrfeedback/pkg/api"
)

// RecoveryMiddleware создает middleware для восстановления после паники
// Перехватывает panic, логирует стек вызовов и возвращает JSON 500
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// http.ErrAbortHandler используется для намеренного обрыва ответа
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("Panic recovered",
						"error", err,
						"method", r.Method,
						"path", redactPhones(r.URL.Path),
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					// Детали паники клиенту не раскрываем
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(api.ErrorResponse{
						Error:   http.StatusText(http.StatusInternalServerError),
						Message: "internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
