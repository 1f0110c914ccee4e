package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hance08/kas/internal/model"
	"github.com/shopspring/decimal"
)

// Formatter renders amounts with a currency code and a number style.
// Style "id" groups thousands with '.' and uses ',' for decimals; any other
// style uses the English convention.
type Formatter struct {
	Currency string
	Style    string
}

func NewFormatter(currency, style string) Formatter {
	return Formatter{Currency: currency, Style: style}
}

// Number formats d with thousands separators and at most two decimals.
func (f Formatter) Number(d decimal.Decimal) string {
	d = d.Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole := d.Truncate(0)
	s := humanize.BigComma(whole.BigInt())
	if frac := d.Sub(whole); !frac.IsZero() {
		s += "." + frac.StringFixed(2)[2:]
	}
	if f.Style == "id" {
		s = swapSeparators(s)
	}
	return sign + s
}

// Amount formats d as "IDR 1.500.000".
func (f Formatter) Amount(d decimal.Decimal) string {
	if f.Currency == "" {
		return f.Number(d)
	}
	return f.Currency + " " + f.Number(d)
}

// AmountString parses s and formats it, or returns s unchanged when it is
// not a decimal.
func (f Formatter) AmountString(s string) string {
	d, err := model.ParseDecimal(s)
	if err != nil {
		return s
	}
	return f.Amount(d)
}

// Percent formats a percentage with at most one decimal.
func (f Formatter) Percent(d decimal.Decimal) string {
	s := d.Round(1).String()
	if f.Style == "id" {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s + "%"
}

func swapSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ',':
			return '.'
		case '.':
			return ','
		}
		return r
	}, s)
}

// Compact renders large amounts as "1.5M" style labels for chart axes.
func Compact(d decimal.Decimal) string {
	f, _ := d.Float64()
	value, prefix := humanize.ComputeSI(f)
	return humanize.FtoaWithDigits(value, 1) + prefix
}
