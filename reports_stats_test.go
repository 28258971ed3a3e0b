package moneybook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewExpenseStats(t *testing.T) {
	reg := NewRegistry()
	l := NewLedger()
	day := dt("2026-08-10")
	l.Append(
		NewExpense(day, "a", "cash", TWD(10), ""),
		NewExpense(day.Add(1), "b", "cash", TWD(20), ""),
		NewExpense(day.Add(2), "c", "cash", TWD(30), ""),
		NewExpense(day.Add(3), "d", "cash", TWD(40), ""),
		NewIncome(day, "not counted", "bank", TWD(9999), ""),
	)

	stats := NewExpenseStatsAsOf(l, reg, Month, dt("2026-08-20"))
	if stats == nil {
		t.Fatal("expected stats, got nil")
	}
	if stats.Count != 4 {
		t.Errorf("count = %d, want 4", stats.Count)
	}

	check := func(name string, got Money, want float64) {
		t.Helper()
		if !got.Amount().Equal(decimal.NewFromFloat(want)) {
			t.Errorf("%s = %v, want %v", name, got.Amount(), want)
		}
	}
	check("mean", stats.Mean, 25)
	check("min", stats.Min, 10)
	check("max", stats.Max, 40)
	check("q1", stats.Q1, 17.5)
	check("median", stats.Median, 25)
	check("q3", stats.Q3, 32.5)
}

func TestNewExpenseStats_SingleValue(t *testing.T) {
	reg := NewRegistry()
	l := NewLedger()
	l.Append(NewExpense(dt("2026-08-10"), "only", "cash", TWD(120), ""))

	stats := NewExpenseStatsAsOf(l, reg, Month, dt("2026-08-20"))
	if stats == nil {
		t.Fatal("expected stats, got nil")
	}
	for name, got := range map[string]Money{
		"mean": stats.Mean, "min": stats.Min, "max": stats.Max,
		"q1": stats.Q1, "median": stats.Median, "q3": stats.Q3,
	} {
		if !got.Amount().Equal(decimal.NewFromInt(120)) {
			t.Errorf("%s = %v, want 120", name, got.Amount())
		}
	}
}

func TestNewExpenseStats_NoData(t *testing.T) {
	reg := NewRegistry()
	l := NewLedger()
	l.Append(NewIncome(dt("2026-08-10"), "salary", "bank", TWD(1000), ""))

	if stats := NewExpenseStatsAsOf(l, reg, Month, dt("2026-08-20")); stats != nil {
		t.Errorf("expected nil stats for a window without expenses, got %+v", stats)
	}
}

func TestNewExpenseStats_WindowCut(t *testing.T) {
	reg := NewRegistry()
	l := NewLedger()
	l.Append(
		NewExpense(dt("2026-08-20"), "inside", "cash", TWD(100), ""),
		NewExpense(dt("2026-08-12"), "outside", "cash", TWD(900), ""),
	)

	stats := NewExpenseStatsAsOf(l, reg, Week, dt("2026-08-20"))
	if stats == nil {
		t.Fatal("expected stats, got nil")
	}
	if stats.Count != 1 {
		t.Errorf("count = %d, want 1 (the 8-day-old expense is outside a week window)", stats.Count)
	}
	if !stats.Max.Equal(TWD(100)) {
		t.Errorf("max = %v, want 100", stats.Max.Amount())
	}
}

func TestPercentile(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
		decimal.NewFromInt(30),
		decimal.NewFromInt(40),
	}
	testCases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.25, 17.5},
		{0.5, 25},
		{0.75, 32.5},
		{1, 40},
	}
	for _, tc := range testCases {
		got := percentile(values, tc.p)
		if !got.Equal(decimal.NewFromFloat(tc.want)) {
			t.Errorf("percentile(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
