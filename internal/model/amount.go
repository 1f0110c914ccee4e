package model

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedAmount = errors.New("malformed amount")

// plain decimal text only; exponent notation would let a short string
// expand to millions of digits
var amountPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseDecimal parses an amount as written on the wire or typed by the
// user, e.g. "1500000" or "-12.50". Surrounding space is ignored.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrMalformedAmount
	}
	return decimal.NewFromString(s)
}
