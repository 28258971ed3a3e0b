package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook/renderer"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show per-account balances and total net worth" }
func (*balancesCmd) Usage() string {
	return `mbk balances

  Folds the whole ledger into one balance per account and values the
  total in the base currency.
`
}

func (*balancesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Balances(ledger, reg))
	return subcommands.ExitSuccess
}
