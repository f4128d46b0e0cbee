package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack/zenquotes"
	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the daily motivational quote" }
func (*quoteCmd) Usage() string {
	return `pft quote

  Displays the quote of the day, a small nudge to keep the tracking habit going.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quote, err := zenquotes.FetchDailyQuote()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(fmt.Sprintf("> %s\n", quote))
	return subcommands.ExitSuccess
}
