package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hance08/kas/internal/model"
)

const DocumentVersion = 1

// Document is the on-disk snapshot format used by import and export.
type Document struct {
	Version      int                 `json:"version"`
	ExportedAt   time.Time           `json:"exported_at"`
	Wallets      []WalletRecord      `json:"wallets"`
	Categories   []CategoryRecord    `json:"categories"`
	Transactions []TransactionRecord `json:"transactions"`
	Budgets      []BudgetRecord      `json:"budgets"`
}

func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode snapshot: %w", err)
	}
	doc.fillEmpty()
	return doc, nil
}

func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Encode(w io.Writer, doc Document) error {
	doc.fillEmpty()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func (d *Document) fillEmpty() {
	if d.Wallets == nil {
		d.Wallets = []WalletRecord{}
	}
	if d.Categories == nil {
		d.Categories = []CategoryRecord{}
	}
	if d.Transactions == nil {
		d.Transactions = []TransactionRecord{}
	}
	if d.Budgets == nil {
		d.Budgets = []BudgetRecord{}
	}
}

// FromSnapshot converts a ledger back into wire records.
func FromSnapshot(s Snapshot, exportedAt time.Time) Document {
	doc := Document{
		Version:      DocumentVersion,
		ExportedAt:   exportedAt,
		Wallets:      make([]WalletRecord, 0, len(s.Wallets)),
		Categories:   make([]CategoryRecord, 0, len(s.Categories)),
		Transactions: make([]TransactionRecord, 0, len(s.Transactions)),
		Budgets:      make([]BudgetRecord, 0, len(s.Budgets)),
	}

	for _, w := range s.Wallets {
		doc.Wallets = append(doc.Wallets, WalletRecord{
			ID:        w.ID.String(),
			UserID:    w.UserID.String(),
			Type:      w.Type,
			Name:      w.Name,
			Balance:   w.Balance,
			CreatedAt: w.CreatedAt,
		})
	}
	for _, c := range s.Categories {
		doc.Categories = append(doc.Categories, CategoryRecord{
			ID:        c.ID.String(),
			UserID:    c.UserID.String(),
			Name:      c.Name,
			Kind:      c.Kind.Token(),
			CreatedAt: c.CreatedAt,
		})
	}
	for _, t := range s.Transactions {
		doc.Transactions = append(doc.Transactions, transactionRecord(t))
	}
	for _, b := range s.Budgets {
		doc.Budgets = append(doc.Budgets, BudgetRecord{
			ID:           b.ID.String(),
			UserID:       b.UserID.String(),
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			Amount:       b.Amount,
			Spent:        b.Spent,
			CreatedAt:    b.CreatedAt,
		})
	}
	return doc
}

func transactionRecord(t model.Transaction) TransactionRecord {
	rec := TransactionRecord{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		WalletID:   t.WalletID.String(),
		Amount:     t.Amount,
		Kind:       t.Kind.Token(),
		OccurredAt: t.OccurredAt,
		CreatedAt:  t.CreatedAt,
	}
	if t.CategoryID != nil {
		cid := t.CategoryID.String()
		rec.CategoryID = &cid
	}
	if t.Note != nil {
		note := *t.Note
		rec.Note = &note
	}
	return rec
}
