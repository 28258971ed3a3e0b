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

type trendCmd struct {
	window string
	date   string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "net worth day by day over a rolling window" }
func (*trendCmd) Usage() string {
	return `mbk trend [-window <w>] [-d <date>]

  Replays the ledger once per day of the window and reports the
  base-currency net worth for each day.
`
}

func (p *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.window, "window", "month", "Rolling window: week, month, quarter, half-year, year, or a day count.")
	f.StringVar(&p.date, "d", "", "Day the window ends on. Defaults to today.")
}

func (p *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Trend(moneybook.NewTrendAsOf(ledger, reg, w, on)))
	return subcommands.ExitSuccess
}
