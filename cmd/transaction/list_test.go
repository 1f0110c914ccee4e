package transaction

import (
	"testing"

	"github.com/hance08/kas/internal/service"
)

func TestFilterByWallet(t *testing.T) {
	txns := []service.TransactionDetail{
		{WalletName: "Dompet"},
		{WalletName: "BCA"},
		{WalletName: "dompet"},
		{WalletName: "Dompet"},
	}

	if got := filterByWallet(txns, "DOMPET", 0); len(got) != 3 {
		t.Fatalf("got %d transactions, want 3", len(got))
	}
	if got := filterByWallet(txns, "dompet", 2); len(got) != 2 {
		t.Fatalf("limit ignored: got %d", len(got))
	}
	if got := filterByWallet(txns, "Mandiri", 0); len(got) != 0 {
		t.Fatalf("got %d transactions for unknown wallet", len(got))
	}
}
