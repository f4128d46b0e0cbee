package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/erapi"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	amount string
	from   string
	to     string
	base   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `pft convert -a <amount> -from <currency> -to <currency> [-base <currency>]

  Converts an amount between two currencies using the latest exchange rates.

Usage Examples:
$ pft convert -a 100 -from USD -to EUR
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "amount to convert")
	f.StringVar(&c.from, "from", "", "source currency code")
	f.StringVar(&c.to, "to", "", "target currency code")
	f.StringVar(&c.base, "base", erapi.DefaultBase, "base currency of the rate table")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "-a, -from and -to are all required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	rates, err := erapi.FetchLatest(c.base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}

	converted, err := fintrack.Convert(amount, c.from, c.to, rates)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %s = %s %s\n", amount.StringFixed(2), c.from, converted.StringFixed(2), c.to)
	return subcommands.ExitSuccess
}
