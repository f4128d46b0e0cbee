package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs before anything else and exits when invoked
	// by the completion machinery.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"income":  {Flags: map[string]complete.Predictor{"p": predict.Nothing, "q": predict.Nothing, "note": predict.Nothing}},
			"expense": {Flags: map[string]complete.Predictor{"p": predict.Nothing, "q": predict.Nothing, "note": predict.Nothing}},
			"balance": {},
			"history": {Flags: map[string]complete.Predictor{"head": predict.Nothing, "tail": predict.Nothing}},
			"fmt":     {},
			"convert": {Flags: map[string]complete.Predictor{"a": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing, "base": predict.Nothing}},
			"quote":   {},
			"topic":   {},
			"assist":  {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
		},
	}
	completer.Complete("pft")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
