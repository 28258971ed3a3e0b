package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/yhlin/moneybook"
)

type transferCmd struct {
	date     string
	name     string
	from     string
	to       string
	amount   float64
	currency string
	rate     float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `mbk transfer -from <account> -to <account> -amount <value> [-rate <r>] [-name <label>] [-d <date>]

  Moves money between two accounts. When the accounts hold different
  currencies, -rate gives how many units of the destination currency one
  unit of the source currency buys.

Usage Examples:
$ mbk transfer -from bank -to cash -amount 3000
$ mbk transfer -from bank -to usd-savings -amount 31500 -rate 0.0317
`
}

func (p *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the transfer (YYYY-MM-DD or relative like -3d). Defaults to today.")
	f.StringVar(&p.name, "name", "", "A label for the transaction.")
	f.StringVar(&p.from, "from", "", "Account the money leaves.")
	f.StringVar(&p.to, "to", "", "Account the money enters.")
	f.Float64Var(&p.amount, "amount", 0, "Amount debited from the source account.")
	f.StringVar(&p.currency, "currency", "", "Currency of the amount. Defaults to the source account's currency.")
	f.Float64Var(&p.rate, "rate", 0, "Conversion rate for cross-currency transfers.")
}

func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		return usageError(err)
	}
	tx := moneybook.NewTransfer(day, p.name, p.from, p.to, moneybook.M(p.amount, p.currency), decimal.NewFromFloat(p.rate))
	return record(tx)
}
