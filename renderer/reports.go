package renderer

import (
	"strings"

	"github.com/yhlin/moneybook"
)

// balanceRow is one line of the balances table.
type balanceRow struct {
	ID       string
	Name     string
	Currency string
	Balance  string
	Value    string
	Unpriced bool
}

type balancesView struct {
	Ledger   string
	Base     string
	Rows     []balanceRow
	Total    string
	Unpriced string
}

// Balances renders the per-account balance table with the base-currency
// net worth. Orphaned balance keys (deleted accounts) are not listed.
func Balances(l *moneybook.Ledger, reg *moneybook.Registry) string {
	balances := moneybook.ComputeBalances(l.All(), reg)
	valuation := moneybook.NewValuation(balances, reg)

	view := balancesView{
		Ledger:   l.Name(),
		Base:     reg.Base,
		Total:    valuation.Total.String(),
		Unpriced: strings.Join(valuation.Unpriced, ", "),
	}
	for _, a := range reg.AllAccounts() {
		bal := balances[a.ID]
		value, priced := moneybook.Value(bal, a.Currency, reg)
		view.Rows = append(view.Rows, balanceRow{
			ID:       a.ID,
			Name:     a.Name,
			Currency: a.Currency,
			Balance:  bal.String(),
			Value:    value.String(),
			Unpriced: !priced,
		})
	}
	return renderTemplate("balances.md", view)
}

type cashflowView struct {
	From, To string
	Income   string
	Expense  string
	Net      string
}

// Cashflow renders the rolling income/expense summary.
func Cashflow(c *moneybook.Cashflow) string {
	return renderTemplate("cashflow.md", cashflowView{
		From:    c.Range.From.String(),
		To:      c.Range.To.String(),
		Income:  c.Income.String(),
		Expense: c.Expense.String(),
		Net:     c.Net.SignedString(),
	})
}

type trendRow struct {
	Date  string
	Total string
}

type trendView struct {
	From, To string
	Rows     []trendRow
}

// Trend renders the day-by-day net-worth table.
func Trend(t *moneybook.Trend) string {
	view := trendView{From: t.Range.From.String(), To: t.Range.To.String()}
	for _, p := range t.Points {
		view.Rows = append(view.Rows, trendRow{Date: p.Date.String(), Total: p.Total.String()})
	}
	return renderTemplate("trend.md", view)
}

type breakdownRow struct {
	Category string
	Total    string
}

type breakdownView struct {
	Kind     string
	From, To string
	Rows     []breakdownRow
}

// Breakdown renders the per-category totals, largest first.
func Breakdown(b *moneybook.Breakdown) string {
	view := breakdownView{Kind: string(b.Kind), From: b.Range.From.String(), To: b.Range.To.String()}
	for _, c := range b.Categories {
		view.Rows = append(view.Rows, breakdownRow{Category: c.Category, Total: c.Total.String()})
	}
	return renderTemplate("breakdown.md", view)
}

type statsView struct {
	From, To string
	HasData  bool
	Count    int
	Mean     string
	Min      string
	Max      string
	Q1       string
	Median   string
	Q3       string
}

// ExpenseStats renders the descriptive statistics table, or a "no data"
// notice when stats is nil.
func ExpenseStats(r moneybook.Range, stats *moneybook.ExpenseStats) string {
	view := statsView{From: r.From.String(), To: r.To.String()}
	if stats != nil {
		view.HasData = true
		view.Count = stats.Count
		view.Mean = stats.Mean.String()
		view.Min = stats.Min.String()
		view.Max = stats.Max.String()
		view.Q1 = stats.Q1.String()
		view.Median = stats.Median.String()
		view.Q3 = stats.Q3.String()
	}
	return renderTemplate("stats.md", view)
}
