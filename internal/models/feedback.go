package models

import (
	"time"

	"github.com/iudanet/qrfeedback/internal/phonemask"
)

const (
	// MinRating минимальная оценка
	MinRating = 1
	// MaxRating максимальная оценка
	MaxRating = 5
)

// Feedback представляет отзыв, оставленный после сканирования QR-кода
type Feedback struct {
	ID        string    `json:"id"`
	AreaID    string    `json:"area_id"`
	Rating    int       `json:"rating"`          // 1..5
	Comment   string    `json:"comment"`         // свободный текст
	Name      string    `json:"name,omitempty"`  // имя посетителя, необязательно
	Phone     string    `json:"phone,omitempty"` // только цифры или пусто
	CreatedAt time.Time `json:"created_at"`
}

// MaskedPhone возвращает телефон в формате (DD) NNNNN-NNNN для отображения
func (f *Feedback) MaskedPhone() string {
	return phonemask.ApplyMask(f.Phone)
}

// HasPhone сообщает, оставил ли посетитель номер для обратной связи
func (f *Feedback) HasPhone() bool {
	return f.Phone != ""
}
