package middleware

import (
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures the number of bytes written
func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// phoneLike совпадает с последовательностями из 10+ цифр,
// допускаются разделители маски между ними.
// UUID стоит первой альтернативой: хвост UUID из цифр и дефисов
// иначе похож на номер.
var phoneLike = regexp.MustCompile(
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}` +
		`|\d(?:[\d()\s.-]*\d){9,}`)

// redactPhones заменяет номера телефонов в строке на ***, UUID остаются
// Например: /api/v1/users/by-phone/11987654321 -> /api/v1/users/by-phone/***
func redactPhones(s string) string {
	return phoneLike.ReplaceAllStringFunc(s, func(m string) string {
		if uuid.Validate(m) == nil {
			return m
		}
		return "***"
	})
}

// LoggingMiddleware создает middleware для логирования HTTP запросов
// Логирует метод, путь, статус, время выполнения, размер ответа
// Номера телефонов в пути и query заменяются на ***
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			// Определяем уровень логирования на основе статуса
			logLevel := slog.LevelInfo
			if wrapped.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if wrapped.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			attrs := []any{
				"method", r.Method,
				"path", redactPhones(r.URL.Path),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes_written", wrapped.written,
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, "query", redactPhones(r.URL.RawQuery))
			}

			logger.Log(r.Context(), logLevel, "HTTP request", attrs...)
		})
	}
}

// LoggingWithSkip создает middleware с возможностью пропуска определенных путей
// Используется для health check и /phone/mask, который UI вызывает на каждое нажатие
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skipMap := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		skipMap[path] = true
	}

	return func(next http.Handler) http.Handler {
		logged := LoggingMiddleware(logger)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipMap[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}
