package snapshot

import "time"

// Wire records mirror the backend JSON. IDs and kinds stay raw strings so a
// single bad record can be reported without failing the whole decode.

type WalletRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	WalletID   string    `json:"wallet_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	Amount     string    `json:"amount"`
	Kind       string    `json:"kind"`
	Note       *string   `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type BudgetRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Amount       string    `json:"amount"`
	Spent        string    `json:"spent"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalyticsRecord is the server-side dashboard payload of GET /analytics.
type AnalyticsRecord struct {
	Breakdown []BreakdownRecord `json:"breakdown"`
	Monthly   []MonthlyRecord   `json:"monthly"`
}

type BreakdownRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type MonthlyRecord struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}
