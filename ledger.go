package moneybook

import (
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append/delete-only log of transactions of one book.
//
// Transactions are kept in creation-timestamp order, the order in which
// they were submitted, so that replays apply concurrent entries the same
// way even when some are back-dated.
type Ledger struct {
	name         string // the sync key, doubles as the file name
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Name returns the ledger's sync key.
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger's sync key.
func (l *Ledger) SetName(name string) { l.name = name }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds transactions to the ledger, assigning an id and a creation
// timestamp to any that lack one, and keeps the log in submission order.
func (l *Ledger) Append(txs ...Transaction) {
	now := time.Now()
	for _, tx := range txs {
		l.transactions = append(l.transactions, stamp(tx, now))
	}
	l.sortByCreated()
}

// stamp fills in the storage-assigned fields of a new transaction.
func stamp(tx Transaction, now time.Time) Transaction {
	switch v := tx.(type) {
	case Income:
		if v.TxID == "" {
			v.TxID = uuid.NewString()
		}
		if v.Created.IsZero() {
			v.Created = now
		}
		return v
	case Expense:
		if v.TxID == "" {
			v.TxID = uuid.NewString()
		}
		if v.Created.IsZero() {
			v.Created = now
		}
		return v
	case Transfer:
		if v.TxID == "" {
			v.TxID = uuid.NewString()
		}
		if v.Created.IsZero() {
			v.Created = now
		}
		return v
	case Adjustment:
		if v.TxID == "" {
			v.TxID = uuid.NewString()
		}
		if v.Created.IsZero() {
			v.Created = now
		}
		return v
	default:
		return tx
	}
}

// Delete removes the transaction with the given id. Deletion is
// irreversible; there is no edit operation.
func (l *Ledger) Delete(id string) error {
	for i, tx := range l.transactions {
		if tx.ID() == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found", id)
}

// Get returns the transaction with the given id, or nil.
func (l *Ledger) Get(id string) Transaction {
	for _, tx := range l.transactions {
		if tx.ID() == id {
			return tx
		}
	}
	return nil
}

// Transactions returns an iterator over the log in submission order.
// With filters, a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns a copy of the transaction log in submission order.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// sortByCreated sorts the ledger by creation timestamp. The sort is
// stable, so entries created at the same instant keep their relative
// order.
func (l *Ledger) sortByCreated() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].CreatedAt().Before(l.transactions[j].CreatedAt())
	})
}

// OldestDate returns the calendar date of the earliest event in the
// ledger, scanning the whole log since submission order and event date
// may disagree for back-dated entries.
func (l *Ledger) OldestDate() Date {
	var oldest Date
	for _, tx := range l.transactions {
		if oldest.IsZero() || tx.When().Before(oldest) {
			oldest = tx.When()
		}
	}
	return oldest
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(kind Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind() == kind }
}

// InRange returns a predicate that filters transactions by calendar date.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.When()) }
}

// ByAccount returns a predicate that keeps transactions referencing the
// given account id on either side.
func ByAccount(id string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Income:
			return v.To == id
		case Expense:
			return v.From == id
		case Transfer:
			return v.From == id || v.To == id
		case Adjustment:
			return v.From == id
		default:
			return false
		}
	}
}
