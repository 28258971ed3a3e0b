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

type statsCmd struct {
	window string
	date   string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "descriptive statistics of expense amounts" }
func (*statsCmd) Usage() string {
	return `mbk stats [-window <w>] [-d <date>]

  Reports count, mean, min, max and quartiles of the base-currency
  expense amounts in the window.
`
}

func (p *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.window, "window", "month", "Rolling window: week, month, quarter, half-year, year, or a day count.")
	f.StringVar(&p.date, "d", "", "Day the window ends on. Defaults to today.")
}

func (p *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	stats := moneybook.NewExpenseStatsAsOf(ledger, reg, w, on)
	printMarkdown(renderer.ExpenseStats(w.Range(on), stats))
	return subcommands.ExitSuccess
}
