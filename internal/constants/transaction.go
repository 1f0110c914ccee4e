package constants

const (
	// Transaction Modes
	ModeExpense = "expense"
	ModeIncome  = "income"

	// Date Layout
	DateFormat = "2006-01-02"

	DefaultListLimit = 50
)
