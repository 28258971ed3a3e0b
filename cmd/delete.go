package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction from the ledger" }
func (*deleteCmd) Usage() string {
	return `mbk delete -id <transaction-id>

  Removes a transaction. Use 'mbk tx' to find its identifier.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Identifier of the transaction to remove.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return usageError(fmt.Errorf("missing -id"))
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Delete(p.id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
