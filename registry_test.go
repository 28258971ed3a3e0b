package moneybook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRegistry_DefaultAccounts(t *testing.T) {
	reg := NewRegistry()
	accounts := reg.AllAccounts()
	if len(accounts) != 3 {
		t.Fatalf("got %d default accounts, want 3", len(accounts))
	}
	for _, a := range accounts {
		if a.Currency != BaseCurrency {
			t.Errorf("default account %q currency = %q, want %q", a.ID, a.Currency, BaseCurrency)
		}
	}
	if reg.Account("cash") == nil {
		t.Error("default cash account must resolve")
	}
	if reg.Account("nope") != nil {
		t.Error("unknown account must resolve to nil")
	}
}

func TestRegistry_AddAccount(t *testing.T) {
	reg := NewRegistry()
	if err := reg.AddAccount(Account{ID: "usd", Name: "USD", Currency: "USD"}); err != nil {
		t.Fatal(err)
	}

	// the defaults materialize alongside the first edit
	if len(reg.Accounts) != 4 {
		t.Errorf("got %d accounts after first add, want 4", len(reg.Accounts))
	}

	if err := reg.AddAccount(Account{ID: "usd", Name: "again", Currency: "USD"}); err == nil {
		t.Error("duplicate id must fail")
	}
	if err := reg.AddAccount(Account{ID: "", Name: "x", Currency: "USD"}); err == nil {
		t.Error("empty id must fail")
	}
	if err := reg.AddAccount(Account{ID: "x", Name: "x", Currency: "us dollars"}); err == nil {
		t.Error("invalid currency code must fail")
	}
}

func TestRegistry_RemoveAccount(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RemoveAccount("card"); err != nil {
		t.Fatalf("RemoveAccount(card) error = %v", err)
	}
	if reg.Account("card") != nil {
		t.Error("removed account must not resolve")
	}
	if len(reg.AllAccounts()) != 2 {
		t.Errorf("got %d accounts, want 2", len(reg.AllAccounts()))
	}
	if err := reg.RemoveAccount("card"); err == nil {
		t.Error("removing a missing account must fail")
	}
}

func TestRegistry_Rates(t *testing.T) {
	reg := NewRegistry()

	// the base currency always has rate 1
	rate, ok := reg.Rate("TWD")
	if !ok || !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("base rate = %v ok=%v, want 1", rate, ok)
	}

	if _, ok := reg.Rate("USD"); ok {
		t.Error("unknown currency must have no rate")
	}

	if err := reg.SetRate("USD", decimal.NewFromFloat(31.5)); err != nil {
		t.Fatal(err)
	}
	rate, ok = reg.Rate("USD")
	if !ok || !rate.Equal(decimal.NewFromFloat(31.5)) {
		t.Errorf("USD rate = %v ok=%v, want 31.5", rate, ok)
	}

	if err := reg.SetRate("TWD", decimal.NewFromInt(2)); err == nil {
		t.Error("setting a rate for the base currency must fail")
	}
	if err := reg.SetRate("USD", decimal.Zero); err == nil {
		t.Error("zero rate must fail")
	}
	if err := reg.SetRate("USD", decimal.NewFromInt(-1)); err == nil {
		t.Error("negative rate must fail")
	}

	if got := reg.Currencies(); len(got) != 1 || got[0] != "USD" {
		t.Errorf("Currencies() = %v, want [USD]", got)
	}
}
