package moneybook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger reads a ledger from JSONL data, one transaction object per
// line. Lines that cannot be decoded are skipped and counted rather than
// aborting the whole read; the count is logged so data loss is visible.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	skipped := 0

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Kind Kind `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			skipped++
			continue
		}

		var tx Transaction
		var err error
		switch identifier.Kind {
		case KindIncome:
			var t Income
			err = json.Unmarshal(line, &t)
			tx = t
		case KindExpense:
			var t Expense
			err = json.Unmarshal(line, &t)
			tx = t
		case KindTransfer:
			var t Transfer
			err = json.Unmarshal(line, &t)
			tx = t
		case KindAdjustment:
			var t Adjustment
			err = json.Unmarshal(line, &t)
			tx = t
		default:
			err = fmt.Errorf("unknown transaction kind %q", identifier.Kind)
		}
		if err != nil {
			skipped++
			continue
		}
		ledger.transactions = append(ledger.transactions, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	if skipped > 0 {
		log.Printf("warning: skipped %d unreadable ledger line(s)", skipped)
	}

	ledger.sortByCreated()
	return ledger, nil
}

// EncodeTransaction marshals a single transaction and writes it followed
// by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, in
// submission order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.sortByCreated()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRegistry reads the account registry and rate table from JSON.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	reg := NewRegistry()
	if err := json.NewDecoder(r).Decode(reg); err != nil {
		return nil, fmt.Errorf("cannot decode registry: %w", err)
	}
	if reg.Base == "" {
		reg.Base = BaseCurrency
	}
	if reg.Rates == nil {
		reg.Rates = make(map[string]decimal.Decimal)
	}
	return reg, nil
}

// EncodeRegistry persists the registry as an indented JSON document.
func EncodeRegistry(w io.Writer, reg *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reg); err != nil {
		return fmt.Errorf("cannot encode registry: %w", err)
	}
	return nil
}
