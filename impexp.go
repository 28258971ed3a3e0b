package moneybook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

// this file handles the bulk import/export format: one delimited text row
// per transaction, easy to produce from and merge into a spreadsheet.

// csvHeader is the column layout of the import/export format.
var csvHeader = []string{"type", "name", "amount", "date", "subCategory", "fromAccount", "toAccount", "exchangeRate"}

// ExportCSV writes the ledger in the import/export format. Quoting of
// commas, quotes and newlines follows RFC 4180 (encoding/csv doubles
// embedded quotes).
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, tx := range l.Transactions() {
		var row []string
		switch v := tx.(type) {
		case Income:
			row = []string{string(KindIncome), v.Name, v.Amount.value.String(), v.Date.String(), v.SubCategory, "", v.To, ""}
		case Expense:
			row = []string{string(KindExpense), v.Name, v.Amount.value.String(), v.Date.String(), v.SubCategory, v.From, "", ""}
		case Transfer:
			rate := ""
			if !v.Rate.IsZero() {
				rate = v.Rate.String()
			}
			row = []string{string(KindTransfer), v.Name, v.Amount.value.String(), v.Date.String(), "", v.From, v.To, rate}
		case Adjustment:
			row = []string{string(KindAdjustment), v.Name, v.Amount.value.String(), v.Date.String(), "", v.From, "", ""}
		default:
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads transactions in the import/export format, applying the
// same validation and defaults as interactive entry: a missing account
// reference falls back to the fallback account, a missing date to the
// import day. Rows that fail to parse or validate are skipped and
// counted, never abort the import.
func ImportCSV(r io.Reader, reg *Registry) (txs []Transaction, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("cannot read import data: %w", err)
	}

	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == csvHeader[0] {
			continue // header row
		}
		tx, rowErr := importRow(row, reg)
		if rowErr != nil {
			log.Printf("import: skipping row %d: %v", i+1, rowErr)
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, skipped, nil
}

// importRow builds and validates one transaction from a CSV row.
func importRow(row []string, reg *Registry) (Transaction, error) {
	if len(row) < len(csvHeader) {
		return nil, fmt.Errorf("want %d columns, got %d", len(csvHeader), len(row))
	}
	kind, err := ParseKind(row[0])
	if err != nil {
		return nil, err
	}
	name := row[1]
	amount, err := decimal.NewFromString(row[2])
	if err != nil {
		return nil, fmt.Errorf("unparseable amount %q: %w", row[2], err)
	}

	day := Today()
	if row[3] != "" {
		if day, err = ParseDate(row[3]); err != nil {
			return nil, err
		}
	}

	subCategory := row[4]
	from, to := row[5], row[6]
	if from == "" {
		from = FallbackAccountID
	}
	if to == "" {
		to = FallbackAccountID
	}

	rate := decimal.Zero
	if row[7] != "" {
		if rate, err = decimal.NewFromString(row[7]); err != nil {
			return nil, fmt.Errorf("unparseable exchange rate %q: %w", row[7], err)
		}
	}

	var tx Transaction
	switch kind {
	case KindIncome:
		tx = NewIncome(day, name, to, M(amount, ""), subCategory)
	case KindExpense:
		tx = NewExpense(day, name, from, M(amount, ""), subCategory)
	case KindTransfer:
		tx = NewTransfer(day, name, from, to, M(amount, ""), rate)
	case KindAdjustment:
		tx = NewAdjustment(day, name, from, M(amount, ""))
	}
	return tx.Validate(reg)
}
