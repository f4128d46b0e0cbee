package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/shopspring/decimal"
)

func mustTx(t *testing.T, kind fintrack.Kind, unitPrice string, quantity int64, item, note string) fintrack.Transaction {
	t.Helper()
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		t.Fatalf("bad unit price %q: %v", unitPrice, err)
	}
	tx, err := fintrack.NewTransaction(kind, price, quantity, item, note)
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}
	return tx
}

func TestTransaction(t *testing.T) {
	testCases := []struct {
		name string
		tx   fintrack.Transaction
		want string
	}{
		{
			name: "income without item",
			tx:   mustTx(t, fintrack.Income, "1200", 1, "", ""),
			want: "Received $1,200.00",
		},
		{
			name: "income with item",
			tx:   mustTx(t, fintrack.Income, "50", 1, "Gift", ""),
			want: "Received $50.00 for Gift",
		},
		{
			name: "single expense",
			tx:   mustTx(t, fintrack.Expense, "9.99", 1, "Book", ""),
			want: "Spent $9.99 on Book",
		},
		{
			name: "multi quantity expense",
			tx:   mustTx(t, fintrack.Expense, "3.5", 2, "Coffee", ""),
			want: "Spent $7.00 on 2 × Coffee",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Transaction(tc.tx, "USD"); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	txs := []fintrack.Transaction{
		mustTx(t, fintrack.Income, "100", 1, "Salary", "october"),
		mustTx(t, fintrack.Expense, "30", 1, "Groceries", ""),
	}

	md := Transactions(txs, "USD")
	lines := strings.Split(strings.TrimSpace(md), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, separator and 2 rows", len(lines))
	}
	if !strings.Contains(lines[2], "Salary") || !strings.Contains(lines[2], "$100.00") {
		t.Errorf("first row %q should contain the income entry", lines[2])
	}
	if !strings.Contains(lines[3], "-$30.00") {
		t.Errorf("second row %q should show the signed expense amount", lines[3])
	}
}

func TestBalance(t *testing.T) {
	got := Balance(decimal.NewFromInt(75), "USD")
	if !strings.Contains(got, "$75.00") {
		t.Errorf("got %q, want the formatted balance", got)
	}
}
