package renderer

import (
	"strings"
	"testing"

	"github.com/yhlin/moneybook"
)

func twd(v float64) moneybook.Money { return moneybook.M(v, "TWD") }

func testLedger(t *testing.T) (*moneybook.Ledger, *moneybook.Registry) {
	t.Helper()
	reg := moneybook.NewRegistry()
	l := moneybook.NewLedger()
	l.SetName("books")
	day := moneybook.MustParseDate("2026-08-10")
	l.Append(
		moneybook.NewIncome(day, "salary", "bank", twd(52000), ""),
		moneybook.NewExpense(day.Add(1), "lunch", "cash", twd(120), "food"),
		moneybook.NewExpense(day.Add(2), "metro", "card", twd(30), "transport"),
	)
	return l, reg
}

func TestBalances(t *testing.T) {
	l, reg := testLedger(t)
	got := Balances(l, reg)

	for _, want := range []string{"# Balances (books)", "TWD", "Cash", "Bank", "Net worth"} {
		if !strings.Contains(got, want) {
			t.Errorf("balances output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "rendering error") {
		t.Fatalf("template failed:\n%s", got)
	}
}

func TestBalancesUnpricedMarker(t *testing.T) {
	reg := moneybook.NewRegistry()
	if err := reg.AddAccount(moneybook.Account{ID: "usd", Name: "USD wallet", Currency: "USD"}); err != nil {
		t.Fatal(err)
	}
	l := moneybook.NewLedger()
	l.Append(moneybook.NewIncome(moneybook.MustParseDate("2026-08-10"), "gift", "usd", moneybook.M(100, "USD"), ""))

	got := Balances(l, reg)
	if !strings.Contains(got, "no exchange rate known for: USD") {
		t.Errorf("expected an unpriced notice for USD:\n%s", got)
	}
}

func TestCashflow(t *testing.T) {
	l, reg := testLedger(t)
	c := moneybook.NewCashflowAsOf(l, reg, moneybook.Month, moneybook.MustParseDate("2026-08-20"))
	got := Cashflow(c)

	for _, want := range []string{"# Cashflow", "Income", "Expense", "Net"} {
		if !strings.Contains(got, want) {
			t.Errorf("cashflow output missing %q:\n%s", want, got)
		}
	}
}

func TestTrend(t *testing.T) {
	l, reg := testLedger(t)
	tr := moneybook.NewTrendAsOf(l, reg, moneybook.Week, moneybook.MustParseDate("2026-08-14"))
	got := Trend(tr)

	if !strings.Contains(got, "# Net worth 2026-08-07 to 2026-08-14") {
		t.Errorf("unexpected trend heading:\n%s", got)
	}
	// 8 daily points for a 7-day window, inclusive of both ends.
	if n := strings.Count(got, "| 2026-08-"); n != 8 {
		t.Errorf("got %d trend rows, want 8:\n%s", n, got)
	}
}

func TestBreakdown(t *testing.T) {
	l, reg := testLedger(t)
	b := moneybook.NewBreakdownAsOf(l, reg, moneybook.KindExpense, moneybook.Month, moneybook.MustParseDate("2026-08-20"))
	got := Breakdown(b)

	food := strings.Index(got, "food")
	transport := strings.Index(got, "transport")
	if food < 0 || transport < 0 {
		t.Fatalf("breakdown output missing categories:\n%s", got)
	}
	if food > transport {
		t.Errorf("expected food (larger total) before transport:\n%s", got)
	}
}

func TestExpenseStats(t *testing.T) {
	l, reg := testLedger(t)
	on := moneybook.MustParseDate("2026-08-20")
	r := moneybook.Month.Range(on)
	stats := moneybook.NewExpenseStatsAsOf(l, reg, moneybook.Month, on)
	got := ExpenseStats(r, stats)

	for _, want := range []string{"Count", "Mean", "Median"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats output missing %q:\n%s", want, got)
		}
	}
}

func TestExpenseStatsNoData(t *testing.T) {
	on := moneybook.MustParseDate("2026-08-20")
	got := ExpenseStats(moneybook.Week.Range(on), nil)
	if !strings.Contains(got, "No expenses recorded") {
		t.Errorf("expected a no-data notice:\n%s", got)
	}
}
