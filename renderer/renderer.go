// Package renderer produces markdown views of the ledger for the terminal.
//
// The store stays the single source of truth: renderers take a snapshot of
// the sequence and never hold state of their own.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/shopspring/decimal"
)

// Transaction renders a ledger entry as a one-line summary.
func Transaction(tx fintrack.Transaction, currency string) string {
	amount := fintrack.FormatAmount(tx.Amount(), currency)
	switch tx.Kind() {
	case fintrack.Income:
		if tx.ItemName() == "" {
			return fmt.Sprintf("Received %s", amount)
		}
		return fmt.Sprintf("Received %s for %s", amount, tx.ItemName())
	default:
		if tx.Quantity() > 1 {
			return fmt.Sprintf("Spent %s on %d × %s", amount, tx.Quantity(), tx.ItemName())
		}
		return fmt.Sprintf("Spent %s on %s", amount, tx.ItemName())
	}
}

// Transactions renders the full sequence as a markdown table, oldest first.
func Transactions(txs []fintrack.Transaction, currency string) string {
	var b strings.Builder
	b.WriteString("| Date | Type | Item | Qty | Unit Price | Amount | Note |\n")
	b.WriteString("|---|---|---|---:|---:|---:|---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s |\n",
			tx.When(),
			tx.Kind(),
			tx.ItemName(),
			tx.Quantity(),
			fintrack.FormatAmount(tx.UnitPrice(), currency),
			fintrack.FormatAmount(tx.SignedAmount(), currency),
			tx.Note(),
		)
	}
	return b.String()
}

// Balance renders the running balance as a markdown heading.
func Balance(balance decimal.Decimal, currency string) string {
	return fmt.Sprintf("# Current Balance: %s\n", fintrack.FormatAmount(balance, currency))
}
