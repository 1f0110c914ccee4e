package model

// Kind classifies money movement. The zero value is KindUnknown so an
// unmapped token never silently becomes income or expense.
type Kind int

const (
	KindUnknown Kind = iota
	KindIncome
	KindExpense
)

// Canonical wire tokens used by the backend.
const (
	TokenIncome  = "in"
	TokenExpense = "out"
)

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// Token returns the canonical wire token, or "" for KindUnknown.
func (k Kind) Token() string {
	switch k {
	case KindIncome:
		return TokenIncome
	case KindExpense:
		return TokenExpense
	default:
		return ""
	}
}

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.Token()), nil
}

// KindFromToken parses a canonical wire token. Anything else is KindUnknown;
// loose spellings are resolved by snapshot.KindTable, not here.
func KindFromToken(tok string) Kind {
	switch tok {
	case TokenIncome:
		return KindIncome
	case TokenExpense:
		return KindExpense
	default:
		return KindUnknown
	}
}
