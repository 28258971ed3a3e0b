package moneybook

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Valuation is the base-currency view of a balance map.
type Valuation struct {
	Total    Money    // sum over registered accounts, in the base currency
	Unpriced []string // currencies valued at rate 1 because no rate is known
}

// NewValuation converts per-account balances into a single base-currency
// total. Only registered accounts contribute: balances orphaned by a
// deleted account stay in the map but are not counted.
//
// A currency with no rate in the table converts at 1 and is reported in
// Unpriced so the caller can flag the figure as partially unpriced.
func NewValuation(b Balances, reg *Registry) *Valuation {
	total := decimal.Zero
	var unpriced []string
	for _, a := range reg.AllAccounts() {
		bal, ok := b[a.ID]
		if !ok {
			continue
		}
		value, priced := convert(bal.value, a.Currency, reg)
		if !priced && !slices.Contains(unpriced, a.Currency) {
			unpriced = append(unpriced, a.Currency)
		}
		total = total.Add(value)
	}
	slices.Sort(unpriced)
	return &Valuation{Total: M(total, reg.Base), Unpriced: unpriced}
}

// Value converts a single account balance into the base currency. The
// boolean is false when the currency had no rate and 1 was used.
func Value(balance Money, currency string, reg *Registry) (Money, bool) {
	value, priced := convert(balance.value, currency, reg)
	return M(value, reg.Base), priced
}

// convert applies the rate table to a raw amount in the given currency.
func convert(value decimal.Decimal, currency string, reg *Registry) (decimal.Decimal, bool) {
	if currency == reg.Base || currency == "" {
		return value, true
	}
	rate, ok := reg.Rate(currency)
	if !ok {
		return value, false
	}
	return value.Mul(rate), true
}
