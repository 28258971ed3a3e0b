package moneybook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSaveFindLedger_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	l := NewLedger()
	l.SetName("mybook")
	l.Append(
		NewIncome(dt("2026-08-01"), "salary", "bank", TWD(52000), ""),
		NewExpense(dt("2026-08-02"), "lunch", "cash", TWD(120), "food"),
	)
	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}

	got, err := FindLedger(dir, "mybook")
	if err != nil {
		t.Fatalf("FindLedger() error = %v", err)
	}
	if got.Name() != "mybook" {
		t.Errorf("name = %q, want mybook", got.Name())
	}
	if got.Len() != 2 {
		t.Errorf("len = %d, want 2", got.Len())
	}
}

func TestFindLedger_FreshWhenEmpty(t *testing.T) {
	l, err := FindLedger(t.TempDir(), "")
	if err != nil {
		t.Fatalf("FindLedger() error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("fresh ledger has %d transactions", l.Len())
	}
	if l.Name() == "" {
		t.Error("fresh ledger must carry a default name so it can be saved")
	}
}

func TestFindLedger_MissingBooksDir(t *testing.T) {
	if _, err := FindLedger(filepath.Join(t.TempDir(), "nope"), ""); err != nil {
		t.Errorf("a missing books directory must yield a fresh ledger, got %v", err)
	}
}

func TestFindLedger_SingleLedgerByDefault(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger()
	l.SetName("onlyone")
	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}

	got, err := FindLedger(dir, "")
	if err != nil {
		t.Fatalf("FindLedger() error = %v", err)
	}
	if got.Name() != "onlyone" {
		t.Errorf("name = %q, want onlyone", got.Name())
	}
}

func TestFindLedger_AmbiguousAndMissingKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"firstbook", "secondbook"} {
		l := NewLedger()
		l.SetName(name)
		if err := SaveLedger(dir, l); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := FindLedger(dir, ""); err == nil {
		t.Error("two ledgers with no key must be ambiguous")
	}
	if _, err := FindLedger(dir, "thirdbook"); err == nil {
		t.Error("a key without a matching file must fail")
	}
	if _, err := FindLedger(dir, "bad key!"); err == nil {
		t.Error("an invalid sync key must be rejected")
	}
}

func TestLoadSaveRegistry(t *testing.T) {
	dir := t.TempDir()

	// missing file yields a fresh registry
	reg, err := LoadRegistry(dir)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if reg.Base != BaseCurrency {
		t.Errorf("base = %q, want %q", reg.Base, BaseCurrency)
	}

	if err := reg.AddAccount(Account{ID: "usd", Name: "USD", Currency: "USD"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetRate("USD", decimal.NewFromFloat(31.5)); err != nil {
		t.Fatal(err)
	}
	if err := SaveRegistry(dir, reg); err != nil {
		t.Fatalf("SaveRegistry() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, RegistryFile)); err != nil {
		t.Fatalf("registry file missing: %v", err)
	}

	got, err := LoadRegistry(dir)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if got.Account("usd") == nil {
		t.Error("saved account missing after reload")
	}
	rate, ok := got.Rate("USD")
	if !ok || !rate.Equal(decimal.NewFromFloat(31.5)) {
		t.Errorf("USD rate = %v ok=%v, want 31.5", rate, ok)
	}
}
