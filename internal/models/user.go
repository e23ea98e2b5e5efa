package models

import "time"

// User представляет контактное лицо, ответственное за зоны (areas)
type User struct {
	ID        string    `json:"id"`         // UUID пользователя
	Name      string    `json:"name"`       // отображаемое имя
	Email     string    `json:"email"`      // email для уведомлений
	Phone     string    `json:"phone"`      // только цифры, без маски
	CreatedAt time.Time `json:"created_at"` // время создания
}
