package snapshot

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/kas/internal/model"
)

var ErrKindConflict = errors.New("kind token mapped to both income and expense")

var (
	defaultIncomeTokens  = []string{"in", "income", "pemasukan"}
	defaultExpenseTokens = []string{"out", "expense", "pengeluaran"}
)

// KindTable maps backend kind tokens to model kinds. Lookups are
// case-insensitive and ignore surrounding whitespace. Tokens that are not in
// the table are never guessed.
type KindTable struct {
	tokens map[string]model.Kind
}

func DefaultKindTable() *KindTable {
	t, _ := NewKindTable(nil, nil)
	return t
}

// NewKindTable returns the default table extended with extra income and
// expense tokens. A token that ends up on both sides is an error.
func NewKindTable(income, expense []string) (*KindTable, error) {
	t := &KindTable{tokens: make(map[string]model.Kind)}

	add := func(tok string, k model.Kind) error {
		tok = normalizeToken(tok)
		if tok == "" {
			return nil
		}
		if prev, ok := t.tokens[tok]; ok && prev != k {
			return fmt.Errorf("%w: %q", ErrKindConflict, tok)
		}
		t.tokens[tok] = k
		return nil
	}

	var errs []error
	for _, tok := range append(append([]string{}, defaultIncomeTokens...), income...) {
		if err := add(tok, model.KindIncome); err != nil {
			errs = append(errs, err)
		}
	}
	for _, tok := range append(append([]string{}, defaultExpenseTokens...), expense...) {
		if err := add(tok, model.KindExpense); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

func (t *KindTable) Lookup(token string) (model.Kind, bool) {
	k, ok := t.tokens[normalizeToken(token)]
	return k, ok
}

// Tokens lists every token mapped to k, sorted.
func (t *KindTable) Tokens(k model.Kind) []string {
	var out []string
	for tok, kind := range t.tokens {
		if kind == k {
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
