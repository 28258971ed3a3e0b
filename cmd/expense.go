package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

type expenseCmd struct {
	date     string
	name     string
	from     string
	amount   float64
	currency string
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent from an account" }
func (*expenseCmd) Usage() string {
	return `mbk expense -from <account> -amount <value> [-name <label>] [-category <c>] [-d <date>]

  Records an expense transaction.

Usage Examples:
$ mbk expense -from cash -amount 120 -name "beef noodles" -category food
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Date of the expense (YYYY-MM-DD or relative like -3d). Defaults to today.")
	f.StringVar(&p.name, "name", "", "A label for the transaction.")
	f.StringVar(&p.from, "from", "", "Account the money is spent from.")
	f.Float64Var(&p.amount, "amount", 0, "Amount spent.")
	f.StringVar(&p.currency, "currency", "", "Currency of the amount. Defaults to the account's currency.")
	f.StringVar(&p.category, "category", "", "Category of the expense, like food or transport.")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		return usageError(err)
	}
	tx := moneybook.NewExpense(day, p.name, p.from, moneybook.M(p.amount, p.currency), p.category)
	return record(tx)
}
