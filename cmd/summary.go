package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
	"github.com/yhlin/moneybook/renderer"
)

type summaryCmd struct {
	window string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "income and expense totals over a rolling window" }
func (*summaryCmd) Usage() string {
	return `mbk summary [-window <w>] [-d <date>]

  Sums income and expense over the window ending on the given day and
  nets them, all in the base currency.

Usage Examples:
$ mbk summary
$ mbk summary -window week -d 2026-07-31
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.window, "window", "month", "Rolling window: week, month, quarter, half-year, year, or a day count.")
	f.StringVar(&p.date, "d", "", "Day the window ends on. Defaults to today.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := moneybook.ParseWindow(p.window)
	if err != nil {
		return usageError(err)
	}
	on, err := parseDay(p.date)
	if err != nil {
		return usageError(err)
	}

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

	printMarkdown(renderer.Cashflow(moneybook.NewCashflowAsOf(ledger, reg, w, on)))
	return subcommands.ExitSuccess
}
