package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteLocation - сохранённая пользователем точка
type FavoriteLocation struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
