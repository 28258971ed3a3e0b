package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

type incomeCmd struct {
	date     string
	name     string
	to       string
	amount   float64
	currency string
	category string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received into an account" }
func (*incomeCmd) Usage() string {
	return `mbk income -to <account> -amount <value> [-name <label>] [-category <c>] [-d <date>]

  Records an income transaction: salary, refund, gift.

Usage Examples:
$ mbk income -to bank -amount 52000 -name "August salary"
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the income (YYYY-MM-DD or relative like -3d). Defaults to today.")
	f.StringVar(&p.name, "name", "", "A label for the transaction.")
	f.StringVar(&p.to, "to", "", "Account receiving the money.")
	f.Float64Var(&p.amount, "amount", 0, "Amount received.")
	f.StringVar(&p.currency, "currency", "", "Currency of the amount. Defaults to the account's currency.")
	f.StringVar(&p.category, "category", "", "Optional category.")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		return usageError(err)
	}
	tx := moneybook.NewIncome(day, p.name, p.to, moneybook.M(p.amount, p.currency), p.category)
	return record(tx)
}
