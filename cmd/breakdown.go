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

type breakdownCmd struct {
	kind   string
	window string
	date   string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "per-category totals over a rolling window" }
func (*breakdownCmd) Usage() string {
	return `mbk breakdown [-kind <k>] [-window <w>] [-d <date>]

  Groups transactions of one kind by category over the window, largest
  total first. Transactions without a category land in Other.
`
}

func (p *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "expense", "Kind to break down: expense or income.")
	f.StringVar(&p.window, "window", "month", "Rolling window: week, month, quarter, half-year, year, or a day count.")
	f.StringVar(&p.date, "d", "", "Day the window ends on. Defaults to today.")
}

func (p *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := moneybook.ParseKind(p.kind)
	if err != nil {
		return usageError(err)
	}
	if kind != moneybook.KindExpense && kind != moneybook.KindIncome {
		return usageError(fmt.Errorf("breakdown supports expense and income, not %s", kind))
	}
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

	printMarkdown(renderer.Breakdown(moneybook.NewBreakdownAsOf(ledger, reg, kind, w, on)))
	return subcommands.ExitSuccess
}
