package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatterAmount(t *testing.T) {
	cases := []struct {
		currency, style, in, want string
	}{
		{"IDR", "id", "1500000", "IDR 1.500.000"},
		{"IDR", "id", "1500000.5", "IDR 1.500.000,50"},
		{"IDR", "id", "-100000", "IDR -100.000"},
		{"USD", "en", "1234567.891", "USD 1,234,567.89"},
		{"USD", "en", "-0.5", "USD -0.50"},
		{"USD", "en", "0", "USD 0"},
		{"", "en", "999", "999"},
	}
	for _, c := range cases {
		f := NewFormatter(c.currency, c.style)
		if got := f.Amount(decimal.RequireFromString(c.in)); got != c.want {
			t.Errorf("Amount(%s, %s/%s) = %q, want %q", c.in, c.currency, c.style, got, c.want)
		}
	}
}

func TestAmountStringPassesThroughGarbage(t *testing.T) {
	f := NewFormatter("IDR", "id")
	if got := f.AmountString("n/a"); got != "n/a" {
		t.Errorf("AmountString(n/a) = %q", got)
	}
	if got := f.AmountString("1e-50000000"); got != "1e-50000000" {
		t.Errorf("AmountString(exponent) = %q", got)
	}
	if got := f.AmountString("80000"); got != "IDR 80.000" {
		t.Errorf("AmountString(80000) = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := NewFormatter("", "id").Percent(decimal.RequireFromString("33.333")); got != "33,3%" {
		t.Errorf("id percent = %q", got)
	}
	if got := NewFormatter("", "en").Percent(decimal.NewFromInt(20)); got != "20%" {
		t.Errorf("en percent = %q", got)
	}
}

func TestCompact(t *testing.T) {
	if got := Compact(decimal.NewFromInt(1500000)); got != "1.5M" {
		t.Errorf("Compact(1500000) = %q", got)
	}
	if got := Compact(decimal.NewFromInt(80000)); got != "80k" {
		t.Errorf("Compact(80000) = %q", got)
	}
}
