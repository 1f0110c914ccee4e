package model

import (
	"time"

	"github.com/google/uuid"
)

// Budget is a per-category spending limit. Spent is filled by whoever owns
// the accounting period (the backend, or the local budget service).
type Budget struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Amount       string    `json:"amount"`
	Spent        string    `json:"spent"`
	CreatedAt    time.Time `json:"created_at"`
}
