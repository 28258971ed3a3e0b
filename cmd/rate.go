package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type rateCmd struct {
	currency string
	value    float64
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "list or set exchange rates" }
func (*rateCmd) Usage() string {
	return `mbk rate [-currency <ccy> -value <r>]

  Without flags, lists the stored exchange rates. With both flags, stores
  how many units of the base currency one unit of <ccy> is worth.

Usage Examples:
$ mbk rate
$ mbk rate -currency USD -value 31.5
`
}

func (p *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "ISO 4217 currency code to set.")
	f.Float64Var(&p.value, "value", 0, "Base-currency value of one unit.")
}

func (p *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}

	if p.currency == "" {
		for _, c := range reg.Currencies() {
			rate, _ := reg.Rate(c)
			fmt.Printf("%s = %s %s\n", c, rate, reg.Base)
		}
		return subcommands.ExitSuccess
	}

	if err := reg.SetRate(p.currency, decimal.NewFromFloat(p.value)); err != nil {
		return usageError(err)
	}
	if err := saveRegistry(reg); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving registry:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s = %v %s\n", p.currency, p.value, reg.Base)
	return subcommands.ExitSuccess
}
