package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single movement of money against a wallet. Amount is
// always non-negative; the direction is carried by Kind.
type Transaction struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	WalletID   uuid.UUID  `json:"wallet_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Amount     string     `json:"amount"`
	Kind       Kind       `json:"kind"`
	Note       *string    `json:"note,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NoteText returns the note or "" when absent.
func (t Transaction) NoteText() string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}
