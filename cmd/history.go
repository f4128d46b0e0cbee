package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	head int
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded transactions" }
func (*historyCmd) Usage() string {
	return `pft history [-head <n> | -tail <n>]

  Lists the recorded transactions, oldest first, with options to limit the output.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store := openStore()
	txs := limit(store.Transactions(), c.head, c.tail)
	printMarkdown(renderer.Transactions(txs, defaultCurrency))
	return subcommands.ExitSuccess
}

// limit keeps the first head or the last tail transactions.
func limit(txs []fintrack.Transaction, head, tail int) []fintrack.Transaction {
	if head > 0 && len(txs) > head {
		return txs[:head]
	}
	if tail > 0 && len(txs) > tail {
		return txs[len(txs)-tail:]
	}
	return txs
}
