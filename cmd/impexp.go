package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `mbk export [-o <file>]

  Writes every transaction as CSV, to stdout or to a file.

Usage Examples:
$ mbk export > books.csv
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file. Defaults to stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.outputFile != "" {
		out, err = os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error creating output file:", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := moneybook.ExportCSV(out, ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error exporting:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from CSV" }
func (*importCmd) Usage() string {
	return `mbk import [-file <file>]

  Reads transactions from CSV (stdin by default) and appends them to the
  ledger with fresh identifiers. Rows that do not parse are skipped and
  counted, a missing account falls back to cash, a missing date becomes
  today.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.inputFile, "file", "", "Input file. Defaults to stdin.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if p.inputFile != "" {
		var err error
		in, err = os.Open(p.inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening input file:", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}

	txs, skipped, err := moneybook.ImportCSV(in, reg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error importing:", err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	ledger.Append(txs...)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions", len(txs))
	if skipped > 0 {
		fmt.Printf(", skipped %d rows", skipped)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
