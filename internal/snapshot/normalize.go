package snapshot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/model"
)

var (
	ErrUnknownKind   = errors.New("unknown kind")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount wraps ErrInvalidAmount.
	ErrNegativeAmount = fmt.Errorf("%w: negative", ErrInvalidAmount)
)

// RecordError describes one rejected record. When Recovered is set the
// record was kept with the offending field reset to zero.
type RecordError struct {
	Collection string
	Index      int
	ID         string
	Err        error
	Recovered  bool
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s[%d]", e.Collection, e.Index)
	if e.ID != "" {
		msg += " (" + e.ID + ")"
	}
	msg += ": " + e.Err.Error()
	if e.Recovered {
		msg += ", using 0"
	}
	return msg
}

func (e *RecordError) Unwrap() error { return e.Err }

// Snapshot is a normalized, immutable view of a user's ledger.
type Snapshot struct {
	Wallets      []model.Wallet
	Categories   []model.Category
	Transactions []model.Transaction
	Budgets      []model.Budget
}

// Normalizer turns wire records into model values. Records without a
// user_id are attributed to UserID.
type Normalizer struct {
	kinds  *KindTable
	userID uuid.UUID
}

func NewNormalizer(kinds *KindTable, userID uuid.UUID) *Normalizer {
	if kinds == nil {
		kinds = DefaultKindTable()
	}
	return &Normalizer{kinds: kinds, userID: userID}
}

// Normalize converts every collection of doc. Records with a bad id, owner,
// kind or a negative amount are dropped. A malformed amount is read as zero and the record is
// kept. Both are reported together in the returned error as *RecordError
// values; the snapshot still holds every kept record.
func (n *Normalizer) Normalize(doc Document) (Snapshot, error) {
	var s Snapshot
	var errs []error

	s.Wallets, errs = n.wallets(doc.Wallets, errs)
	s.Categories, errs = n.categories(doc.Categories, errs)
	s.Transactions, errs = n.transactions(doc.Transactions, errs)
	s.Budgets, errs = n.budgets(doc.Budgets, errs)

	return s, errors.Join(errs...)
}

func (n *Normalizer) Wallets(recs []WalletRecord) ([]model.Wallet, error) {
	out, errs := n.wallets(recs, nil)
	return out, errors.Join(errs...)
}

func (n *Normalizer) Categories(recs []CategoryRecord) ([]model.Category, error) {
	out, errs := n.categories(recs, nil)
	return out, errors.Join(errs...)
}

func (n *Normalizer) Transactions(recs []TransactionRecord) ([]model.Transaction, error) {
	out, errs := n.transactions(recs, nil)
	return out, errors.Join(errs...)
}

func (n *Normalizer) Budgets(recs []BudgetRecord) ([]model.Budget, error) {
	out, errs := n.budgets(recs, nil)
	return out, errors.Join(errs...)
}

func (n *Normalizer) wallets(recs []WalletRecord, errs []error) ([]model.Wallet, []error) {
	out := make([]model.Wallet, 0, len(recs))
	for i, r := range recs {
		reject := func(err error) { errs = append(errs, &RecordError{Collection: "wallets", Index: i, ID: r.ID, Err: err}) }
		keepAsZero := func(err error) {
			errs = append(errs, &RecordError{Collection: "wallets", Index: i, ID: r.ID, Err: err, Recovered: true})
		}

		id, err := parseID("id", r.ID)
		if err != nil {
			reject(err)
			continue
		}
		uid, err := n.owner(r.UserID)
		if err != nil {
			reject(err)
			continue
		}
		balance, err := parseAmount("balance", r.Balance, true)
		if err != nil {
			keepAsZero(err)
		}
		out = append(out, model.Wallet{
			ID:        id,
			UserID:    uid,
			Type:      strings.TrimSpace(r.Type),
			Name:      strings.TrimSpace(r.Name),
			Balance:   balance,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, errs
}

func (n *Normalizer) categories(recs []CategoryRecord, errs []error) ([]model.Category, []error) {
	out := make([]model.Category, 0, len(recs))
	for i, r := range recs {
		reject := func(err error) { errs = append(errs, &RecordError{Collection: "categories", Index: i, ID: r.ID, Err: err}) }

		id, err := parseID("id", r.ID)
		if err != nil {
			reject(err)
			continue
		}
		uid, err := n.owner(r.UserID)
		if err != nil {
			reject(err)
			continue
		}
		// an unmapped kind simply leaves the category out of expense views
		kind, _ := n.kinds.Lookup(r.Kind)
		out = append(out, model.Category{
			ID:        id,
			UserID:    uid,
			Name:      strings.TrimSpace(r.Name),
			Kind:      kind,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, errs
}

func (n *Normalizer) transactions(recs []TransactionRecord, errs []error) ([]model.Transaction, []error) {
	out := make([]model.Transaction, 0, len(recs))
	for i, r := range recs {
		reject := func(err error) { errs = append(errs, &RecordError{Collection: "transactions", Index: i, ID: r.ID, Err: err}) }
		keepAsZero := func(err error) {
			errs = append(errs, &RecordError{Collection: "transactions", Index: i, ID: r.ID, Err: err, Recovered: true})
		}

		id, err := parseID("id", r.ID)
		if err != nil {
			reject(err)
			continue
		}
		uid, err := n.owner(r.UserID)
		if err != nil {
			reject(err)
			continue
		}
		walletID, err := parseID("wallet_id", r.WalletID)
		if err != nil {
			reject(err)
			continue
		}
		var categoryID *uuid.UUID
		if r.CategoryID != nil && strings.TrimSpace(*r.CategoryID) != "" {
			cid, err := parseID("category_id", *r.CategoryID)
			if err != nil {
				reject(err)
				continue
			}
			categoryID = &cid
		}
		kind, ok := n.kinds.Lookup(r.Kind)
		if !ok {
			reject(fmt.Errorf("%w %q", ErrUnknownKind, r.Kind))
			continue
		}
		amount, err := parseAmount("amount", r.Amount, false)
		if errors.Is(err, ErrNegativeAmount) {
			reject(err)
			continue
		} else if err != nil {
			keepAsZero(err)
		}

		occurred := r.OccurredAt
		if occurred.IsZero() {
			occurred = r.CreatedAt
		}
		var note *string
		if r.Note != nil {
			v := *r.Note
			note = &v
		}

		out = append(out, model.Transaction{
			ID:         id,
			UserID:     uid,
			WalletID:   walletID,
			CategoryID: categoryID,
			Amount:     amount,
			Kind:       kind,
			Note:       note,
			OccurredAt: occurred,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, errs
}

func (n *Normalizer) budgets(recs []BudgetRecord, errs []error) ([]model.Budget, []error) {
	out := make([]model.Budget, 0, len(recs))
	for i, r := range recs {
		reject := func(err error) { errs = append(errs, &RecordError{Collection: "budgets", Index: i, ID: r.ID, Err: err}) }
		keepAsZero := func(err error) {
			errs = append(errs, &RecordError{Collection: "budgets", Index: i, ID: r.ID, Err: err, Recovered: true})
		}

		id, err := parseID("id", r.ID)
		if err != nil {
			reject(err)
			continue
		}
		uid, err := n.owner(r.UserID)
		if err != nil {
			reject(err)
			continue
		}
		categoryID, err := parseID("category_id", r.CategoryID)
		if err != nil {
			reject(err)
			continue
		}
		amount, err := parseAmount("amount", r.Amount, false)
		if errors.Is(err, ErrNegativeAmount) {
			reject(err)
			continue
		} else if err != nil {
			keepAsZero(err)
		}
		spent := "0"
		if strings.TrimSpace(r.Spent) != "" {
			if spent, err = parseAmount("spent", r.Spent, false); err != nil {
				keepAsZero(err)
			}
		}
		out = append(out, model.Budget{
			ID:           id,
			UserID:       uid,
			CategoryID:   categoryID,
			CategoryName: strings.TrimSpace(r.CategoryName),
			Amount:       amount,
			Spent:        spent,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, errs
}

func (n *Normalizer) owner(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return n.userID, nil
	}
	return parseID("user_id", raw)
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %s %q", ErrInvalidID, field, raw)
	}
	return id, nil
}

// parseAmount validates a decimal string and returns its canonical form.
// On a malformed value it returns "0" alongside the error.
func parseAmount(field, raw string, allowNegative bool) (string, error) {
	d, err := model.ParseDecimal(raw)
	if err != nil {
		return "0", fmt.Errorf("%w %s %q", ErrInvalidAmount, field, raw)
	}
	if !allowNegative && d.IsNegative() {
		return "0", fmt.Errorf("%w %s %q", ErrNegativeAmount, field, raw)
	}
	return d.String(), nil
}
