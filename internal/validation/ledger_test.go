package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/hance08/kas/internal/model"
)

func TestParseAmount(t *testing.T) {
	good := map[string]string{
		"50000":    "50000",
		" 12.5 ":   "12.5",
		"0.01":     "0.01",
		"100.1000": "100.1",
	}
	for in, want := range good {
		d, err := ParseAmount(in)
		if err != nil || d.String() != want {
			t.Errorf("ParseAmount(%q) = %s, %v; want %s", in, d, err, want)
		}
	}

	for _, in := range []string{"", "0", "-5", "1.000.000", "abc", "0.001", "1000000000000000", "1e3", "1e-50000000"} {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) accepted", in)
		}
	}
}

func TestValidateInitialBalance(t *testing.T) {
	for _, in := range []string{"", "0", "250000.75"} {
		if err := ValidateInitialBalance(in); err != nil {
			t.Errorf("ValidateInitialBalance(%q) = %v", in, err)
		}
	}
	for _, in := range []string{"-1", "x", "5e2"} {
		if err := ValidateInitialBalance(in); err == nil {
			t.Errorf("ValidateInitialBalance(%q) accepted", in)
		}
	}
}

func TestNameValidator(t *testing.T) {
	v := NameValidator("wallet name")
	if err := v("Dompet"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := v("   "); err == nil || !strings.Contains(err.Error(), "wallet name") {
		t.Errorf("blank name: %v", err)
	}
	if err := v(strings.Repeat("a", 101)); err == nil {
		t.Error("long name accepted")
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, in := range []string{"", "idr", "USD"} {
		if err := ValidateCurrency(in); err != nil {
			t.Errorf("ValidateCurrency(%q) = %v", in, err)
		}
	}
	for _, in := range []string{"RP", "US1", "EURO"} {
		if err := ValidateCurrency(in); err == nil {
			t.Errorf("ValidateCurrency(%q) accepted", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	d, err := ParseDate("2025-02-14", loc)
	if err != nil || d.Day() != 14 || d.Location() != loc {
		t.Fatalf("ParseDate = %v, %v", d, err)
	}
	if _, err := ParseDate("14/02/2025", loc); err == nil {
		t.Error("wrong layout accepted")
	}
	if err := ValidateDate(""); err != nil {
		t.Errorf("empty date rejected: %v", err)
	}
}

func TestValidateWalletType(t *testing.T) {
	if err := ValidateWalletType("E-Wallet"); err != nil {
		t.Errorf("e-wallet rejected: %v", err)
	}
	if err := ValidateWalletType("piggy"); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want model.Kind
	}{
		{"income", model.KindIncome},
		{" IN ", model.KindIncome},
		{"Expense", model.KindExpense},
		{"out", model.KindExpense},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseKind("transfer"); err == nil {
		t.Error("transfer accepted")
	}
}
