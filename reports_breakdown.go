package moneybook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// OtherCategory is the bucket for transactions with no sub-category.
const OtherCategory = "Other"

// CategoryTotal is one bucket of a breakdown.
type CategoryTotal struct {
	Category string
	Total    Money // in the base currency
}

// Breakdown groups one kind of transaction by sub-category over a window.
type Breakdown struct {
	Kind       Kind
	Range      Range
	Categories []CategoryTotal // sorted by descending total
}

// NewBreakdown sums the window's income or expense transactions per
// sub-category, converted to the base currency. An absent or empty
// sub-category lands in the "Other" bucket.
func NewBreakdown(l *Ledger, reg *Registry, kind Kind, w Window) *Breakdown {
	return NewBreakdownAsOf(l, reg, kind, w, Today())
}

// NewBreakdownAsOf is NewBreakdown with an explicit end day.
func NewBreakdownAsOf(l *Ledger, reg *Registry, kind Kind, w Window, on Date) *Breakdown {
	r := w.Range(on)
	sums := make(map[string]decimal.Decimal)

	for _, tx := range l.Transactions(InRange(r)) {
		var category string
		var amount Money
		switch v := tx.(type) {
		case Income:
			if kind != KindIncome {
				continue
			}
			category, amount = v.SubCategory, convertedAmount(v.Amount, v.To, reg)
		case Expense:
			if kind != KindExpense {
				continue
			}
			category, amount = v.SubCategory, convertedAmount(v.Amount, v.From, reg)
		default:
			continue
		}
		if category == "" {
			category = OtherCategory
		}
		sums[category] = sums[category].Add(amount.value)
	}

	b := &Breakdown{Kind: kind, Range: r, Categories: make([]CategoryTotal, 0, len(sums))}
	for category, total := range sums {
		b.Categories = append(b.Categories, CategoryTotal{Category: category, Total: M(total, reg.Base)})
	}
	sort.Slice(b.Categories, func(i, j int) bool {
		a, z := b.Categories[i], b.Categories[j]
		if !a.Total.Equal(z.Total) {
			return a.Total.GreaterThan(z.Total)
		}
		return a.Category < z.Category
	})
	return b
}
