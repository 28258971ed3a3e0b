package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yhlin/moneybook/cmd"
)

// completion describes the CLI for shell completion. Calling Complete
// exits early when invoked by the shell, before any flag parsing.
func completion() {
	windows := predict.Set{"week", "month", "quarter", "half-year", "year"}
	report := &complete.Command{Flags: map[string]complete.Predictor{
		"window": windows,
		"d":      predict.Something,
	}}

	mbk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"books":  predict.Dirs("*"),
			"ledger": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"income":      {},
			"expense":     {},
			"transfer":    {},
			"adjust":      {},
			"delete":      {},
			"tx":          {},
			"accounts":    {},
			"rate":        {},
			"fetch-rates": {},
			"balances":    {},
			"summary":     report,
			"trend":       report,
			"breakdown":   report,
			"stats":       report,
			"import":      {},
			"export":      {},
			"topic":       {},
			"assist":      {},
		},
	}
	mbk.Complete("mbk")
}

func main() {
	completion()

	// A .env in the books folder is a convenient place for the Gemini
	// API key. Missing file is fine.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
