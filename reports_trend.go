package moneybook

// TrendPoint is one day of the net-worth trend.
type TrendPoint struct {
	Date  Date
	Total Money
}

// Trend is the day-by-day history of the total base-currency valuation
// over a window.
type Trend struct {
	Range  Range
	Points []TrendPoint // one per day, oldest first
}

// NewTrend reconstructs the net worth for each day of the window by
// replaying the full balance fold over transactions dated on or before
// that day, then valuing the result.
//
// Each day is an independent replay, O(days × transactions). That is
// deliberate: at personal-ledger scale the simple replay is cheap and it
// keeps every point a pure function of the log. Note the replay cuts by
// calendar date while the live balance fold orders by creation
// timestamp, so a back-dated entry can make today's point differ from
// the balances report.
func NewTrend(l *Ledger, reg *Registry, w Window) *Trend {
	return NewTrendAsOf(l, reg, w, Today())
}

// NewTrendAsOf is NewTrend with an explicit end day, for reproducible
// reports and tests.
func NewTrendAsOf(l *Ledger, reg *Registry, w Window, on Date) *Trend {
	r := w.Range(on)
	trend := &Trend{Range: r, Points: make([]TrendPoint, 0, int(w)+1)}

	all := l.All()
	for day := r.From; !day.After(r.To); day = day.Add(1) {
		upTo := make([]Transaction, 0, len(all))
		for _, tx := range all {
			if !tx.When().After(day) {
				upTo = append(upTo, tx)
			}
		}
		v := NewValuation(ComputeBalances(upTo, reg), reg)
		trend.Points = append(trend.Points, TrendPoint{Date: day, Total: v.Total})
	}
	return trend
}
