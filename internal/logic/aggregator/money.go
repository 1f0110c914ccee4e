package aggregator

import (
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses a decimal string exactly. Empty or malformed input,
// exponent notation included, yields zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := model.ParseDecimal(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// percentOf returns part/whole*100 rounded to two places, or zero when whole
// is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(whole, 2)
}
