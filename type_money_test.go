package moneybook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyArithmetic(t *testing.T) {
	if got := TWD(100).Add(TWD(20)); !got.Equal(TWD(120)) {
		t.Errorf("100+20 = %v", got.Amount())
	}
	if got := TWD(100).Sub(TWD(20)); !got.Equal(TWD(80)) {
		t.Errorf("100-20 = %v", got.Amount())
	}
	if got := TWD(100).Neg(); !got.Equal(TWD(-100)) {
		t.Errorf("-100 = %v", got.Amount())
	}
	if got := TWD(100).Mul(decimal.NewFromFloat(0.5)); !got.Equal(TWD(50)) {
		t.Errorf("100*0.5 = %v", got.Amount())
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// the empty currency defers to the other operand
	got := NO(10).Add(TWD(5))
	if got.Currency() != "TWD" {
		t.Errorf("currency = %q, want TWD", got.Currency())
	}
	got = TWD(10).Add(NO(5))
	if got.Currency() != "TWD" {
		t.Errorf("currency = %q, want TWD", got.Currency())
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding TWD and USD must panic")
		}
	}()
	TWD(1).Add(USD(1))
}

func TestMoneyComparisons(t *testing.T) {
	if !TWD(1).LessThan(TWD(2)) || TWD(2).LessThan(TWD(1)) {
		t.Error("LessThan broken")
	}
	if !TWD(2).GreaterThan(TWD(1)) {
		t.Error("GreaterThan broken")
	}
	if !TWD(0).IsZero() || TWD(1).IsZero() {
		t.Error("IsZero broken")
	}
	if !TWD(1).IsPositive() || !TWD(-1).IsNegative() {
		t.Error("sign predicates broken")
	}
	if TWD(1).Equal(USD(1)) {
		t.Error("equal amounts in different currencies must not be Equal")
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := TWD(0).SignedString(); got != "-" {
		t.Errorf("zero renders as %q, want -", got)
	}
	if got := TWD(100).SignedString(); got[0] != '+' {
		t.Errorf("positive must carry an explicit sign, got %q", got)
	}
}

func TestM_FromDecimal(t *testing.T) {
	d := decimal.NewFromFloat(12.34)
	m := M(d, "USD")
	if !m.Amount().Equal(d) || m.Currency() != "USD" {
		t.Errorf("M(decimal) = %v %s", m.Amount(), m.Currency())
	}
}
