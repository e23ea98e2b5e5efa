package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/qrfeedback/pkg/api"
)

// maxBodyBytes ограничивает размер JSON тела запроса
const maxBodyBytes = 64 << 10

// responder содержит общие методы отправки ответов
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

// decodeJSON читает тело запроса в dst, неизвестные поля отклоняются
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}
