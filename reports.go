package moneybook

import (
	"fmt"
	"strconv"
)

// Window is a rolling day-count over which the analytics reports run.
type Window int

// The selectable windows.
const (
	Week     Window = 7
	Month    Window = 30
	Quarter  Window = 90
	HalfYear Window = 180
	Year     Window = 365
)

// Windows lists the selectable windows in ascending order.
var Windows = []Window{Week, Month, Quarter, HalfYear, Year}

func (w Window) String() string {
	switch w {
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case HalfYear:
		return "half-year"
	case Year:
		return "year"
	default:
		return strconv.Itoa(int(w)) + "d"
	}
}

// ParseWindow parses a window name ("month") or one of the fixed day
// counts ("30").
func ParseWindow(s string) (Window, error) {
	switch s {
	case "week", "w":
		return Week, nil
	case "month", "m":
		return Month, nil
	case "quarter", "q":
		return Quarter, nil
	case "half-year", "h":
		return HalfYear, nil
	case "year", "y":
		return Year, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		for _, w := range Windows {
			if Window(n) == w {
				return w, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown window %q, want one of week, month, quarter, half-year, year", s)
}

// Range returns the inclusive date range [on-w, on] covered by the
// window ending on the given day.
func (w Window) Range(on Date) Range {
	return Range{From: on.Add(-int(w)), To: on}
}

// convertedAmount returns a transaction's amount in the base currency,
// using the currency of the account the transaction touches (not the
// current balance). Missing rates convert at 1.
func convertedAmount(amount Money, accountID string, reg *Registry) Money {
	currency := amount.Currency()
	if acc := reg.Account(accountID); acc != nil {
		currency = acc.Currency
	}
	value, _ := convert(amount.value, currency, reg)
	return M(value, reg.Base)
}
