package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `pft fmt

  Reads all transactions from the ledger file, upgrading legacy records
  on the way, and writes them back in the canonical indented JSON form.

  Unlike the other commands, fmt refuses to touch an unreadable ledger.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := os.Open(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	txs, err := fintrack.DecodeTransactions(r)
	r.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	if err := fintrack.EncodeTransactions(&buf, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(*ledgerFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d transactions in %s\n", len(txs), *ledgerFile)
	return subcommands.ExitSuccess
}
