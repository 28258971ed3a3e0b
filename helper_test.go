package moneybook

import "time"

// TWD is a helper for tests to create base-currency money from a const.
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create usd money from a const.
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// dt is a helper for tests to build a date from its string form.
func dt(s string) Date { return MustParseDate(s) }

// at returns a fixed creation timestamp n seconds into an arbitrary day,
// to pin submission order in tests.
func at(n int) time.Time {
	return time.Date(2026, time.August, 20, 12, 0, n, 0, time.UTC)
}

// usdRegistry returns a registry with the default TWD accounts plus a
// USD account, and no rate for USD. Adding the account materializes the
// defaults alongside it.
func usdRegistry() *Registry {
	reg := NewRegistry()
	if err := reg.AddAccount(Account{ID: "usd", Name: "USD wallet", Currency: "USD"}); err != nil {
		panic(err)
	}
	return reg
}
