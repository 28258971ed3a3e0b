package moneybook

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency in which all cross-account totals are
// reported.
const BaseCurrency = "TWD"

// FallbackAccountID is the account bulk imports fall back to when a row
// carries no account reference.
const FallbackAccountID = "cash"

// Account is a user-defined bucket of money in a single currency.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// DefaultAccounts returns the built-in account set used until the user
// defines their own.
func DefaultAccounts() []Account {
	return []Account{
		{ID: "cash", Name: "Cash", Currency: BaseCurrency},
		{ID: "bank", Name: "Bank", Currency: BaseCurrency},
		{ID: "card", Name: "Credit Card", Currency: BaseCurrency},
	}
}

// Registry holds the account set and the exchange-rate table of one book.
// It is plain configuration passed into the engines, never ambient state.
type Registry struct {
	Base     string                     `json:"base"`
	Accounts []Account                  `json:"accounts"`
	Rates    map[string]decimal.Decimal `json:"rates"` // currency -> units of Base per unit
}

// NewRegistry creates a registry with the default base currency, an empty
// account set and an empty rate table.
func NewRegistry() *Registry {
	return &Registry{Base: BaseCurrency, Rates: make(map[string]decimal.Decimal)}
}

// AllAccounts returns the registered accounts, falling back to the
// built-in default set when the user has not defined any.
func (r *Registry) AllAccounts() []Account {
	if len(r.Accounts) == 0 {
		return DefaultAccounts()
	}
	return r.Accounts
}

// Account returns the account with the given id, or nil if unknown.
func (r *Registry) Account(id string) *Account {
	for _, a := range r.AllAccounts() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// AddAccount registers a new account. The id must be unique.
func (r *Registry) AddAccount(a Account) error {
	if a.ID == "" {
		return fmt.Errorf("account id is missing")
	}
	if err := ValidateCurrency(a.Currency); err != nil {
		return fmt.Errorf("invalid currency for account %q: %w", a.ID, err)
	}
	// materialize the defaults on first edit so they stay visible.
	r.Accounts = r.AllAccounts()
	for _, existing := range r.Accounts {
		if existing.ID == a.ID {
			return fmt.Errorf("account %q already exists", a.ID)
		}
	}
	r.Accounts = append(r.Accounts, a)
	return nil
}

// RemoveAccount deletes an account by id. Transactions referencing it are
// left untouched: their balances become orphaned keys that no longer
// appear in account-keyed displays.
func (r *Registry) RemoveAccount(id string) error {
	accounts := r.AllAccounts()
	for i, a := range accounts {
		if a.ID == id {
			r.Accounts = slices.Delete(slices.Clone(accounts), i, i+1)
			return nil
		}
	}
	return fmt.Errorf("account %q not found", id)
}

// Rate returns the conversion rate of currency into the base currency.
func (r *Registry) Rate(currency string) (decimal.Decimal, bool) {
	if currency == r.Base {
		return decimal.NewFromInt(1), true
	}
	rate, ok := r.Rates[currency]
	return rate, ok
}

// SetRate records the conversion rate of currency into the base currency.
func (r *Registry) SetRate(currency string, rate decimal.Decimal) error {
	if err := ValidateCurrency(currency); err != nil {
		return err
	}
	if currency == r.Base {
		return fmt.Errorf("cannot set a rate for the base currency %s", r.Base)
	}
	if !rate.IsPositive() {
		return fmt.Errorf("rate for %s must be positive, got %v", currency, rate)
	}
	if r.Rates == nil {
		r.Rates = make(map[string]decimal.Decimal)
	}
	r.Rates[currency] = rate
	return nil
}

// Currencies returns the sorted list of currencies with a known rate,
// base excluded.
func (r *Registry) Currencies() []string {
	return slices.Sorted(maps.Keys(r.Rates))
}
