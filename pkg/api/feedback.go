package api

import "time"

// SubmitFeedbackRequest представляет отзыв, отправленный после сканирования QR-кода
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`                  // оценка 1..5
	Comment string `json:"comment,omitempty" validate:"max=2000"`          // текст отзыва
	Name    string `json:"name,omitempty" validate:"max=100"`              // имя посетителя
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone_br"` // с маской или без
}

// FeedbackResponse представляет сохраненный отзыв
type FeedbackResponse struct {
	ID        string    `json:"id"`
	AreaSlug  string    `json:"area_slug"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"` // (DD) NNNNN-NNNN
	CreatedAt time.Time `json:"created_at"`
}

// ListFeedbackResponse представляет список отзывов зоны (новые первыми)
type ListFeedbackResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Count    int                `json:"count"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
