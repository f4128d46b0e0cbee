// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")

	c.Register(&convertCmd{}, "tools")
	c.Register(&quoteCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.json", "Path to the ledger file containing transactions (JSON format)")

const defaultCurrency = "USD"

// openStore opens the application's ledger store. A missing or unreadable
// file yields an empty store, never an error.
func openStore() *fintrack.Store {
	return fintrack.Open(*ledgerFile)
}

// printMarkdown renders md for the terminal, falling back to the raw text
// when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
