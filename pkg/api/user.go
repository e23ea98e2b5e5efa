package api

import "time"

// CreateUserRequest представляет запрос на создание контактного лица
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone_br"`
}

// UserResponse представляет контактное лицо
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"` // с маской
	CreatedAt time.Time `json:"created_at"`
}
