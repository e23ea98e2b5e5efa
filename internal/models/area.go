package models

import "time"

// Area представляет физическую зону, в которой размещен QR-код.
// Slug кодируется в QR-код и используется в публичных URL.
type Area struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
