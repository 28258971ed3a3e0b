package moneybook

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ExpenseStats are descriptive statistics over the expense amounts of a
// window, in the base currency.
type ExpenseStats struct {
	Range  Range
	Count  int
	Mean   Money
	Min    Money
	Max    Money
	Q1     Money // 25th percentile
	Median Money // 50th percentile
	Q3     Money // 75th percentile
}

// NewExpenseStats collects all expense amounts of the window, converted
// to the base currency, and computes count, mean, min, max and the
// quartiles. It returns nil when the window holds no expenses: the
// caller renders that as "no data" instead of a row of zeros.
func NewExpenseStats(l *Ledger, reg *Registry, w Window) *ExpenseStats {
	return NewExpenseStatsAsOf(l, reg, w, Today())
}

// NewExpenseStatsAsOf is NewExpenseStats with an explicit end day.
func NewExpenseStatsAsOf(l *Ledger, reg *Registry, w Window, on Date) *ExpenseStats {
	r := w.Range(on)
	var values []decimal.Decimal
	for _, tx := range l.Transactions(InRange(r)) {
		v, ok := tx.(Expense)
		if !ok {
			continue
		}
		values = append(values, convertedAmount(v.Amount, v.From, reg).value)
	}
	if len(values) == 0 {
		return nil
	}

	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	n := len(values)
	base := reg.Base
	return &ExpenseStats{
		Range:  r,
		Count:  n,
		Mean:   M(sum.Div(decimal.NewFromInt(int64(n))), base),
		Min:    M(values[0], base),
		Max:    M(values[n-1], base),
		Q1:     M(percentile(values, 0.25), base),
		Median: M(percentile(values, 0.50), base),
		Q3:     M(percentile(values, 0.75), base),
	}
}

// percentile computes percentile p over ascending values by linear
// interpolation between order statistics: for index = (n-1)*p, the
// result is values[floor] * (1-frac) + values[ceil] * frac.
func percentile(values []decimal.Decimal, p float64) decimal.Decimal {
	index := float64(len(values)-1) * p
	lo := int(math.Floor(index))
	frac := index - float64(lo)
	if frac == 0 || lo+1 >= len(values) {
		return values[lo]
	}
	a := values[lo].Mul(decimal.NewFromFloat(1 - frac))
	b := values[lo+1].Mul(decimal.NewFromFloat(frac))
	return a.Add(b)
}
