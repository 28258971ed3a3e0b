package renderer

import (
	"github.com/yhlin/moneybook"
)

type txRow struct {
	ID       string
	Date     string
	Kind     string
	Label    string
	Amount   string
	From     string
	To       string
	Category string
}

type txView struct {
	Rows []txRow
}

// Transactions renders a transaction listing in creation order.
func Transactions(txs []moneybook.Transaction) string {
	view := txView{}
	for _, tx := range txs {
		row := txRow{
			ID:    tx.ID(),
			Date:  tx.When().String(),
			Kind:  string(tx.Kind()),
			Label: tx.Label(),
		}
		switch v := tx.(type) {
		case moneybook.Income:
			row.Amount = v.Amount.String()
			row.To = v.To
			row.Category = v.SubCategory
		case moneybook.Expense:
			row.Amount = v.Amount.String()
			row.From = v.From
			row.Category = v.SubCategory
		case moneybook.Transfer:
			row.Amount = v.Amount.String()
			row.From = v.From
			row.To = v.To
		case moneybook.Adjustment:
			row.Amount = v.Amount.SignedString()
			row.From = v.From
		}
		view.Rows = append(view.Rows, row)
	}
	return renderTemplate("transactions.md", view)
}
