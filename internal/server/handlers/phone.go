package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/qrfeedback/internal/phonemask"
	"github.com/iudanet/qrfeedback/pkg/api"
)

// PhoneHandler форматирует номер для поля ввода. Состояния не хранит.
type PhoneHandler struct {
	responder
}

// NewPhoneHandler создает новый handler маски телефона
func NewPhoneHandler(logger *slog.Logger) *PhoneHandler {
	return &PhoneHandler{responder: responder{logger: logger}}
}

// Mask обрабатывает POST /api/v1/phone/mask
// Вызывается UI на каждое нажатие клавиши, поэтому ничего не логирует
func (h *PhoneHandler) Mask(w http.ResponseWriter, r *http.Request) {
	var req api.PhoneMaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := api.PhoneMaskResponse{
		Masked: phonemask.ApplyMask(req.Value),
		Digits: phonemask.StripMask(req.Value),
		Valid:  phonemask.Validate(req.Value),
	}
	if resp.Valid {
		// E164 пустой, если libphonenumber не признает номер
		resp.E164, _ = phonemask.ToE164(req.Value)
	}

	h.sendJSON(w, resp, http.StatusOK)
}
