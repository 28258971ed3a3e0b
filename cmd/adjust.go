package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

type adjustCmd struct {
	date     string
	name     string
	from     string
	amount   float64
	currency string
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "correct an account balance by a signed amount" }
func (*adjustCmd) Usage() string {
	return `mbk adjust -from <account> -amount <value> [-name <label>] [-d <date>]

  Books a signed correction against an account, for reconciling the books
  with reality. A positive amount raises the balance, a negative amount
  lowers it.

Usage Examples:
$ mbk adjust -from cash -amount -35 -name "lost receipt"
$ mbk adjust -from cash -amount 120 -name "found in coat pocket"
`
}

func (p *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the adjustment (YYYY-MM-DD or relative like -3d). Defaults to today.")
	f.StringVar(&p.name, "name", "", "A label for the adjustment.")
	f.StringVar(&p.from, "from", "", "Account to adjust.")
	f.Float64Var(&p.amount, "amount", 0, "Signed amount, positive raises the balance.")
	f.StringVar(&p.currency, "currency", "", "Currency of the amount. Defaults to the account's currency.")
}

func (p *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		return usageError(err)
	}
	tx := moneybook.NewAdjustment(day, p.name, p.from, moneybook.M(p.amount, p.currency))
	return record(tx)
}
