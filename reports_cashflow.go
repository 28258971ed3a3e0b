package moneybook

import "github.com/shopspring/decimal"

// Cashflow sums income against expenses over a window, in the base
// currency.
type Cashflow struct {
	Range   Range
	Income  Money
	Expense Money
	Net     Money // Income - Expense
}

// NewCashflow computes the rolling income/expense summary for the window
// ending today. Amounts convert to the base currency using each
// transaction's own account currency, not the current balances.
func NewCashflow(l *Ledger, reg *Registry, w Window) *Cashflow {
	return NewCashflowAsOf(l, reg, w, Today())
}

// NewCashflowAsOf is NewCashflow with an explicit end day.
func NewCashflowAsOf(l *Ledger, reg *Registry, w Window, on Date) *Cashflow {
	r := w.Range(on)
	income, expense := decimal.Zero, decimal.Zero

	for _, tx := range l.Transactions(InRange(r)) {
		switch v := tx.(type) {
		case Income:
			income = income.Add(convertedAmount(v.Amount, v.To, reg).value)
		case Expense:
			expense = expense.Add(convertedAmount(v.Amount, v.From, reg).value)
		}
	}

	return &Cashflow{
		Range:   r,
		Income:  M(income, reg.Base),
		Expense: M(expense, reg.Base),
		Net:     M(income.Sub(expense), reg.Base),
	}
}
