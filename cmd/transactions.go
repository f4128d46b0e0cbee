package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	unitPrice string
	quantity  string
	note      string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income entry in the ledger" }
func (*incomeCmd) Usage() string {
	return `pft income -p <unit_price> [-q <quantity>] [-note <note>] [<item>]

  Records an income entry. The amount is unit price times quantity.
  The item name is optional for income.

Usage Examples:
$ pft income -p 2500 salary
$ pft income -p 120 -q 2 -note "birthday" gift
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.unitPrice, "p", "", "unit price of the entry")
	f.StringVar(&c.quantity, "q", "1", "quantity of units")
	f.StringVar(&c.note, "note", "", "free-form note attached to the entry")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(fintrack.Income, c.unitPrice, c.quantity, itemName(f), c.note)
}

type expenseCmd struct {
	unitPrice string
	quantity  string
	note      string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense entry in the ledger" }
func (*expenseCmd) Usage() string {
	return `pft expense -p <unit_price> [-q <quantity>] [-note <note>] <item>

  Records an expense entry. The amount is unit price times quantity.
  The item name is required for expenses.

Usage Examples:
$ pft expense -p 4.50 coffee
$ pft expense -p 12 -q 3 "movie tickets"
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.unitPrice, "p", "", "unit price of the entry")
	f.StringVar(&c.quantity, "q", "1", "quantity of units")
	f.StringVar(&c.note, "note", "", "free-form note attached to the entry")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(fintrack.Expense, c.unitPrice, c.quantity, itemName(f), c.note)
}

// itemName joins the positional arguments into the item name.
func itemName(f *flag.FlagSet) string {
	if f.NArg() == 0 {
		return ""
	}
	name := f.Arg(0)
	for _, arg := range f.Args()[1:] {
		name += " " + arg
	}
	return name
}

// record appends an entry to the application ledger and reports the outcome.
func record(kind fintrack.Kind, unitPrice, quantity, item, note string) subcommands.ExitStatus {
	store := openStore()
	tx, err := store.Append(kind, unitPrice, quantity, item, note)

	var verr *fintrack.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Invalid entry: %v\n", verr)
		return subcommands.ExitUsageError
	}
	var perr *fintrack.PersistenceError
	if errors.As(err, &perr) {
		// The entry is kept in memory but the session is short lived,
		// so warn the user that it was not saved.
		fmt.Fprintf(os.Stderr, "Warning: entry recorded but not saved: %v\n", perr)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transaction(tx, defaultCurrency))
	return subcommands.ExitSuccess
}
