package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yhlin/moneybook"
)

type accountsCmd struct {
	add      bool
	remove   bool
	id       string
	name     string
	currency string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list, add or remove accounts" }
func (*accountsCmd) Usage() string {
	return `mbk accounts [-add -id <id> -name <name> -currency <ccy>] [-remove -id <id>]

  Without flags, lists the accounts. With -add, registers a new account.
  With -remove, removes one; its past transactions stay in the ledger.

Usage Examples:
$ mbk accounts
$ mbk accounts -add -id usd-savings -name "USD savings" -currency USD
$ mbk accounts -remove -id usd-savings
`
}

func (p *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.add, "add", false, "Register a new account.")
	f.BoolVar(&p.remove, "remove", false, "Remove an account.")
	f.StringVar(&p.id, "id", "", "Account identifier.")
	f.StringVar(&p.name, "name", "", "Display name. Defaults to the identifier.")
	f.StringVar(&p.currency, "currency", moneybook.BaseCurrency, "ISO 4217 currency code.")
}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.add && p.remove {
		return usageError(fmt.Errorf("-add and -remove cannot be used together"))
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading registry:", err)
		return subcommands.ExitFailure
	}

	switch {
	case p.add:
		if p.id == "" {
			return usageError(fmt.Errorf("missing -id"))
		}
		if err := moneybook.ValidateCurrency(p.currency); err != nil {
			return usageError(err)
		}
		name := p.name
		if name == "" {
			name = p.id
		}
		if err := reg.AddAccount(moneybook.Account{ID: p.id, Name: name, Currency: p.currency}); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if err := saveRegistry(reg); err != nil {
			fmt.Fprintln(os.Stderr, "Error saving registry:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added account %q (%s)\n", p.id, p.currency)

	case p.remove:
		if p.id == "" {
			return usageError(fmt.Errorf("missing -id"))
		}
		if err := reg.RemoveAccount(p.id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if err := saveRegistry(reg); err != nil {
			fmt.Fprintln(os.Stderr, "Error saving registry:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed account %q. Its transactions stay in the ledger.\n", p.id)

	default:
		for _, a := range reg.AllAccounts() {
			fmt.Printf("%-12s %-20s %s\n", a.ID, a.Name, a.Currency)
		}
	}
	return subcommands.ExitSuccess
}
