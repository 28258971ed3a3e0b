package moneybook

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying a transaction variant.
type Kind string

// Transaction kinds.
const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindTransfer   Kind = "transfer"
	KindAdjustment Kind = "adjustment"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindExpense, KindTransfer, KindAdjustment:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction defines the common interface for all events recorded in the
// ledger. Each variant enforces its own required fields at validation
// time, so a well-formed ledger never carries a "wrong optional field".
type Transaction interface {
	Kind() Kind            // Kind returns the variant tag (e.g. "income").
	ID() string            // ID returns the storage-assigned identifier.
	When() Date            // When returns the calendar date of the event.
	CreatedAt() time.Time  // CreatedAt returns the record-creation timestamp.
	Label() string         // Label returns the user-supplied description.
	Equal(Transaction) bool
	Validate(reg *Registry) (Transaction, error)
}

type baseTx struct {
	TxID    string    `json:"id,omitempty"`   // assigned on append, opaque
	Command Kind      `json:"kind"`           // variant tag
	Name    string    `json:"name,omitempty"` // user description
	Date    Date      `json:"date"`           // calendar date of the event
	Created time.Time `json:"created"`        // submission order key
}

func (t baseTx) Kind() Kind           { return t.Command }
func (t baseTx) ID() string           { return t.TxID }
func (t baseTx) When() Date           { return t.Date }
func (t baseTx) CreatedAt() time.Time { return t.Created }
func (t baseTx) Label() string        { return t.Name }

// validate fills the defaults shared by all variants.
func (t *baseTx) validate() {
	if t.Date.IsZero() {
		t.Date = Today()
	}
}

func (t baseTx) equal(o baseTx) bool {
	return t.TxID == o.TxID && t.Command == o.Command && t.Name == o.Name &&
		t.Date == o.Date && t.Created.Equal(o.Created)
}

// fixCurrency returns the amount with its currency defaulted to the
// account's native currency, or an error on a mismatch. Unknown accounts
// leave the amount untouched.
func fixCurrency(amount Money, accountID string, reg *Registry) (Money, error) {
	acc := reg.Account(accountID)
	if acc == nil {
		return amount, nil
	}
	if amount.Currency() == "" {
		return M(amount.value, acc.Currency), nil
	}
	if amount.Currency() != acc.Currency {
		return amount, fmt.Errorf("amount currency %s does not match account %q currency %s", amount.Currency(), accountID, acc.Currency)
	}
	return amount, nil
}

// --- Income ---

// Income records money entering an account from outside the book.
type Income struct {
	baseTx
	To          string // credited account id
	Amount      Money
	SubCategory string
}

// NewIncome creates a new Income transaction.
func NewIncome(day Date, name, to string, amount Money, subCategory string) Income {
	return Income{
		baseTx:      baseTx{Command: KindIncome, Date: day, Name: name},
		To:          to,
		Amount:      amount,
		SubCategory: subCategory,
	}
}

func (t Income) Equal(other Transaction) bool {
	o, ok := other.(Income)
	return ok && t.baseTx.equal(o.baseTx) && t.To == o.To && t.Amount.Equal(o.Amount) && t.SubCategory == o.SubCategory
}

// Validate checks the Income fields: the credited account must be set and
// the amount must not be negative. The amount currency is defaulted to
// the account's currency.
func (t Income) Validate(reg *Registry) (Transaction, error) {
	t.baseTx.validate()
	if t.To == "" {
		return t, errors.New("income requires a destination account")
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("income amount must not be negative, got %v", t.Amount.Amount())
	}
	amount, err := fixCurrency(t.Amount, t.To, reg)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// --- Expense ---

// Expense records money leaving an account.
type Expense struct {
	baseTx
	From        string // debited account id
	Amount      Money
	SubCategory string
}

// NewExpense creates a new Expense transaction.
func NewExpense(day Date, name, from string, amount Money, subCategory string) Expense {
	return Expense{
		baseTx:      baseTx{Command: KindExpense, Date: day, Name: name},
		From:        from,
		Amount:      amount,
		SubCategory: subCategory,
	}
}

func (t Expense) Equal(other Transaction) bool {
	o, ok := other.(Expense)
	return ok && t.baseTx.equal(o.baseTx) && t.From == o.From && t.Amount.Equal(o.Amount) && t.SubCategory == o.SubCategory
}

// Validate checks the Expense fields: the debited account must be set and
// the amount must not be negative.
func (t Expense) Validate(reg *Registry) (Transaction, error) {
	t.baseTx.validate()
	if t.From == "" {
		return t, errors.New("expense requires a source account")
	}
	if t.Amount.IsNegative() {
		return t, fmt.Errorf("expense amount must not be negative, got %v", t.Amount.Amount())
	}
	amount, err := fixCurrency(t.Amount, t.From, reg)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// --- Transfer ---

// Transfer moves money between two accounts. When the accounts hold
// different currencies, Rate converts the debited amount into the
// destination currency (units of destination currency per unit of source
// currency).
type Transfer struct {
	baseTx
	From   string
	To     string
	Amount Money           // in the source account's currency
	Rate   decimal.Decimal // destination units per source unit, zero when same currency
}

// NewTransfer creates a new Transfer transaction.
func NewTransfer(day Date, name, from, to string, amount Money, rate decimal.Decimal) Transfer {
	return Transfer{
		baseTx: baseTx{Command: KindTransfer, Date: day, Name: name},
		From:   from,
		To:     to,
		Amount: amount,
		Rate:   rate,
	}
}

func (t Transfer) Equal(other Transaction) bool {
	o, ok := other.(Transfer)
	return ok && t.baseTx.equal(o.baseTx) && t.From == o.From && t.To == o.To &&
		t.Amount.Equal(o.Amount) && t.Rate.Equal(o.Rate)
}

// Validate checks the Transfer fields. Both accounts must be set and the
// amount must be positive. When both accounts are registered and hold
// different currencies, a positive exchange rate is required.
func (t Transfer) Validate(reg *Registry) (Transaction, error) {
	t.baseTx.validate()
	if t.From == "" || t.To == "" {
		return t, errors.New("transfer requires both a source and a destination account")
	}
	if t.From == t.To {
		return t, fmt.Errorf("cannot transfer from account %q to itself", t.From)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transfer amount must be positive, got %v", t.Amount.Amount())
	}
	amount, err := fixCurrency(t.Amount, t.From, reg)
	if err != nil {
		return t, err
	}
	t.Amount = amount

	from, to := reg.Account(t.From), reg.Account(t.To)
	if from != nil && to != nil && from.Currency != to.Currency && !t.Rate.IsPositive() {
		return t, fmt.Errorf("transfer from %s to %s requires an exchange rate", from.Currency, to.Currency)
	}
	return t, nil
}

// --- Adjustment ---

// Adjustment is a manual correction: a signed delta applied directly to
// one account's balance, used to reconcile drift against the real world.
type Adjustment struct {
	baseTx
	From   string // adjusted account id
	Amount Money  // signed delta, positive or negative
}

// NewAdjustment creates a new Adjustment transaction.
func NewAdjustment(day Date, name, from string, amount Money) Adjustment {
	return Adjustment{
		baseTx: baseTx{Command: KindAdjustment, Date: day, Name: name},
		From:   from,
		Amount: amount,
	}
}

func (t Adjustment) Equal(other Transaction) bool {
	o, ok := other.(Adjustment)
	return ok && t.baseTx.equal(o.baseTx) && t.From == o.From && t.Amount.Equal(o.Amount)
}

// Validate checks the Adjustment fields: only the account is required,
// the amount may carry either sign.
func (t Adjustment) Validate(reg *Registry) (Transaction, error) {
	t.baseTx.validate()
	if t.From == "" {
		return t, errors.New("adjustment requires an account")
	}
	amount, err := fixCurrency(t.Amount, t.From, reg)
	if err != nil {
		return t, err
	}
	t.Amount = amount
	return t, nil
}

// --- JSONL (un)marshalling ---

// flatTx is the wire shape shared by all variants: one JSON object per
// line with the amount split into a plain number and a currency code.
type flatTx struct {
	ID          string           `json:"id,omitempty"`
	Kind        Kind             `json:"kind"`
	Name        string           `json:"name,omitempty"`
	Date        Date             `json:"date"`
	Created     time.Time        `json:"created"`
	From        string           `json:"from,omitempty"`
	To          string           `json:"to,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	Currency    string           `json:"currency,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	SubCategory string           `json:"subCategory,omitempty"`
}

func (t baseTx) flat() flatTx {
	return flatTx{ID: t.TxID, Kind: t.Command, Name: t.Name, Date: t.Date, Created: t.Created}
}

func (f flatTx) base() baseTx {
	return baseTx{TxID: f.ID, Command: f.Kind, Name: f.Name, Date: f.Date, Created: f.Created}
}

func (t Income) MarshalJSON() ([]byte, error) {
	f := t.baseTx.flat()
	f.To, f.Amount, f.Currency, f.SubCategory = t.To, t.Amount.value, t.Amount.cur, t.SubCategory
	return json.Marshal(f)
}

func (t *Income) UnmarshalJSON(data []byte) error {
	var f flatTx
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.baseTx, t.To, t.Amount, t.SubCategory = f.base(), f.To, M(f.Amount, f.Currency), f.SubCategory
	return nil
}

func (t Expense) MarshalJSON() ([]byte, error) {
	f := t.baseTx.flat()
	f.From, f.Amount, f.Currency, f.SubCategory = t.From, t.Amount.value, t.Amount.cur, t.SubCategory
	return json.Marshal(f)
}

func (t *Expense) UnmarshalJSON(data []byte) error {
	var f flatTx
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.baseTx, t.From, t.Amount, t.SubCategory = f.base(), f.From, M(f.Amount, f.Currency), f.SubCategory
	return nil
}

func (t Transfer) MarshalJSON() ([]byte, error) {
	f := t.baseTx.flat()
	f.From, f.To, f.Amount, f.Currency = t.From, t.To, t.Amount.value, t.Amount.cur
	if !t.Rate.IsZero() {
		rate := t.Rate
		f.Rate = &rate
	}
	return json.Marshal(f)
}

func (t *Transfer) UnmarshalJSON(data []byte) error {
	var f flatTx
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.baseTx, t.From, t.To, t.Amount = f.base(), f.From, f.To, M(f.Amount, f.Currency)
	if f.Rate != nil {
		t.Rate = *f.Rate
	}
	return nil
}

func (t Adjustment) MarshalJSON() ([]byte, error) {
	f := t.baseTx.flat()
	f.From, f.Amount, f.Currency = t.From, t.Amount.value, t.Amount.cur
	return json.Marshal(f)
}

func (t *Adjustment) UnmarshalJSON(data []byte) error {
	var f flatTx
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.baseTx, t.From, t.Amount = f.base(), f.From, M(f.Amount, f.Currency)
	return nil
}
