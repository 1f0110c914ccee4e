package service

import (
	"time"

	"github.com/hance08/kas/internal/model"
)

// TransactionInput is what the user supplies when recording a transaction.
// CategoryName may be empty.
type TransactionInput struct {
	WalletName   string
	CategoryName string
	Kind         model.Kind
	Amount       string
	Note         string
	OccurredAt   time.Time
}

// TransactionDetail is a transaction with its wallet and category resolved
// to names for display.
type TransactionDetail struct {
	model.Transaction
	WalletName   string
	CategoryName string
}

// ShortID is the first block of the id, enough to pick a transaction on the
// command line.
func (d TransactionDetail) ShortID() string {
	return d.ID.String()[:8]
}
