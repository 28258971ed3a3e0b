package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook/fx"
)

type fetchRatesCmd struct {
	all bool
}

func (*fetchRatesCmd) Name() string     { return "fetch-rates" }
func (*fetchRatesCmd) Synopsis() string { return "fetch exchange rates from the network" }
func (*fetchRatesCmd) Usage() string {
	return `mbk fetch-rates [-all]

  Fetches the latest reference rates and stores them in the registry.
  By default only the currencies of registered accounts are stored, -all
  keeps every quoted currency. Responses are cached on disk for the day.
`
}

func (p *fetchRatesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.all, "all", false, "Store every quoted currency, not only the ones in use.")
}

func (p *fetchRatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}

	rates, err := fx.FetchRates(nil, reg.Base)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error fetching rates:", err)
		return subcommands.ExitFailure
	}

	// The currencies worth storing: the ones accounts actually hold.
	var inUse []string
	for _, a := range reg.AllAccounts() {
		if a.Currency != reg.Base && !slices.Contains(inUse, a.Currency) {
			inUse = append(inUse, a.Currency)
		}
	}

	stored := 0
	for currency, rate := range rates {
		if !p.all && !slices.Contains(inUse, currency) {
			continue
		}
		if err := reg.SetRate(currency, rate); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", currency, err)
			continue
		}
		stored++
	}

	if err := saveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving registry:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stored %d rates against %s\n", stored, reg.Base)
	return subcommands.ExitSuccess
}
