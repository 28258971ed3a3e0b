// Package cmd implements the CLI application to manage personal books.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&adjustCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&accountsCmd{}, "registry")
	c.Register(&rateCmd{}, "registry")
	c.Register(&fetchRatesCmd{}, "registry")

	c.Register(&balancesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// As a CLI application the lifecycle is very short lived, so globals are fine.

var booksPath = flag.String("books", ".", "Path to the books folder (ledger and registry)")
var ledgerKey = flag.String("ledger", "", "Ledger to use. Defaults to the only ledger if one exists.")

// loadLedger finds and decodes the ledger selected by the global flags.
func loadLedger() (*moneybook.Ledger, error) {
	return moneybook.FindLedger(*booksPath, *ledgerKey)
}

func saveLedger(l *moneybook.Ledger) error {
	return moneybook.SaveLedger(*booksPath, l)
}

func loadRegistry() (*moneybook.Registry, error) {
	return moneybook.LoadRegistry(*booksPath)
}

func saveRegistry(reg *moneybook.Registry) error {
	return moneybook.SaveRegistry(*booksPath, reg)
}

// record validates a transaction against the registry, appends it to the
// ledger and saves. Shared by all booking commands.
func record(tx moneybook.Transaction) subcommands.ExitStatus {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}
	tx, err = moneybook.Validate(reg, tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	ledger.Append(tx)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %q on %s\n", tx.Kind(), tx.Label(), tx.When())
	return subcommands.ExitSuccess
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitUsageError
}

// parseDay parses the -d flag, defaulting to today.
func parseDay(s string) (moneybook.Date, error) {
	if s == "" {
		return moneybook.Today(), nil
	}
	return moneybook.ParseDate(s)
}

// printMarkdown renders markdown for the terminal. If the fancy renderer
// fails the raw markdown is still perfectly readable, so print that.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
