package api

import "time"

// CreateAreaRequest представляет запрос на создание зоны
type CreateAreaRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// AreaResponse представляет зону
type AreaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	FeedbackURL string    `json:"feedback_url"` // путь, который кодируется в QR-код
	CreatedAt   time.Time `json:"created_at"`
}

// ListAreasResponse представляет список зон
type ListAreasResponse struct {
	Areas []AreaResponse `json:"areas"`
}
