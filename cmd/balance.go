package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance" }
func (*balanceCmd) Usage() string {
	return `pft balance

  Displays the current balance, all recorded income minus all recorded expenses.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	printMarkdown(renderer.Balance(store.Balance(), defaultCurrency))
	return subcommands.ExitSuccess
}
