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

type txCmd struct {
	kind    string
	account string
	start   string
	date    string
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `mbk tx [-kind <k>] [-account <a>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions, oldest first, with options for filtering and
  limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "", "Only this kind: income, expense, transfer or adjustment.")
	f.StringVar(&p.account, "account", "", "Only transactions touching this account.")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range. Defaults to today when -s is given.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	keep := func(moneybook.Transaction) bool { return true }
	if p.kind != "" {
		kind, err := moneybook.ParseKind(p.kind)
		if err != nil {
			return usageError(err)
		}
		keep = and(keep, moneybook.ByKind(kind))
	}
	if p.account != "" {
		keep = and(keep, moneybook.ByAccount(p.account))
	}
	if p.start != "" {
		from, err := moneybook.ParseDate(p.start)
		if err != nil {
			return usageError(fmt.Errorf("parsing start date: %w", err))
		}
		to, err := parseDay(p.date)
		if err != nil {
			return usageError(fmt.Errorf("parsing end date: %w", err))
		}
		keep = and(keep, moneybook.InRange(moneybook.Range{From: from, To: to}))
	}

	var transactions []moneybook.Transaction
	for _, tx := range ledger.Transactions() {
		if keep(tx) {
			transactions = append(transactions, tx)
		}
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}

// and composes predicates, unlike Ledger.Transactions whose filters
// match any.
func and(a, b func(moneybook.Transaction) bool) func(moneybook.Transaction) bool {
	return func(tx moneybook.Transaction) bool { return a(tx) && b(tx) }
}
