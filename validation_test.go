package moneybook

import "testing"

func TestValidateCurrency(t *testing.T) {
	for _, ok := range []string{"TWD", "USD", "EUR", "JPY"} {
		if err := ValidateCurrency(ok); err != nil {
			t.Errorf("ValidateCurrency(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "usd", "US", "USDX", "U$D", "us dollars"} {
		if err := ValidateCurrency(bad); err == nil {
			t.Errorf("ValidateCurrency(%q) must fail", bad)
		}
	}
}

func TestValidateSyncKey(t *testing.T) {
	for _, ok := range []string{"mybook", "books-2026", "a_b_c12", "abcdef"} {
		if err := ValidateSyncKey(ok); err != nil {
			t.Errorf("ValidateSyncKey(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "short", "has space", "dot.dot", "sla/sh"} {
		if err := ValidateSyncKey(bad); err == nil {
			t.Errorf("ValidateSyncKey(%q) must fail", bad)
		}
	}
}

func TestValidate_Dispatch(t *testing.T) {
	reg := NewRegistry()

	if _, err := Validate(reg, NewIncome(dt("2026-08-01"), "ok", "bank", TWD(1), "")); err != nil {
		t.Errorf("valid income rejected: %v", err)
	}
	if _, err := Validate(reg, NewExpense(dt("2026-08-01"), "bad", "", TWD(1), "")); err == nil {
		t.Error("invalid expense accepted")
	}
}
