package moneybook

import (
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// Balances maps an account id to its balance in that account's native
// currency. It is derived, never stored: every query folds the log again.
type Balances map[string]Money

// ComputeBalances folds a transaction log into per-account balances.
//
// The fold applies transactions in creation-timestamp order, not calendar
// date order, so concurrent entries land in submission order even when
// back-dated. The trend report instead replays by calendar date; the two
// can disagree for back-dated entries and that difference is intentional.
//
// Every registered account starts at zero. Transactions referencing an
// unregistered or deleted account still produce an entry keyed by that
// id; callers render only the keys they know. Malformed records are
// skipped rather than corrupting the fold.
func ComputeBalances(txs []Transaction, reg *Registry) Balances {
	b := make(Balances)
	for _, a := range reg.AllAccounts() {
		b[a.ID] = M(decimal.Zero, a.Currency)
	}

	ordered := make([]Transaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt().Before(ordered[j].CreatedAt())
	})

	for _, tx := range ordered {
		switch v := tx.(type) {
		case Income:
			if v.To == "" {
				continue
			}
			b.apply(v.To, v.Amount.value, v.Amount.cur)
		case Expense:
			if v.From == "" {
				continue
			}
			b.apply(v.From, v.Amount.value.Neg(), v.Amount.cur)
		case Adjustment:
			if v.From == "" {
				continue
			}
			b.apply(v.From, v.Amount.value, v.Amount.cur)
		case Transfer:
			if v.From == "" || v.To == "" {
				continue
			}
			b.apply(v.From, v.Amount.value.Neg(), v.Amount.cur)
			b.apply(v.To, creditOf(v, reg), "")
		}
	}
	return b
}

// creditOf returns the amount credited to a transfer's destination: the
// debited amount converted by the transfer's own rate when the two
// accounts hold different currencies and a rate was recorded, the
// unconverted amount otherwise. A cross-currency transfer whose rate is
// missing (possible through hand-edited data) therefore converts at 1.
func creditOf(t Transfer, reg *Registry) decimal.Decimal {
	from, to := reg.Account(t.From), reg.Account(t.To)
	sameCurrency := from != nil && to != nil && from.Currency == to.Currency
	if !sameCurrency && !t.Rate.IsZero() {
		return t.Amount.value.Mul(t.Rate)
	}
	return t.Amount.value
}

// apply adds a signed delta to an account's balance. The currency is the
// account's native one when registered; for orphaned keys it falls back
// to the transaction's currency.
func (b Balances) apply(id string, delta decimal.Decimal, currency string) {
	m, ok := b[id]
	if !ok {
		m = M(decimal.Zero, currency)
	}
	b[id] = Money{value: m.value.Add(delta), cur: m.cur}
}

// AccountIDs returns the sorted account ids present in the balance map,
// including orphaned ones.
func (b Balances) AccountIDs() []string {
	return slices.Sorted(maps.Keys(b))
}
