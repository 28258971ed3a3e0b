package moneybook

import (
	"fmt"
	"regexp"
)

var currencyRE = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that a currency code looks like an ISO-4217
// code (three uppercase letters). Codes unknown to the formatter are
// still accepted; they just render without a symbol.
func ValidateCurrency(code string) error {
	if !currencyRE.MatchString(code) {
		return fmt.Errorf("invalid currency code %q, want three uppercase letters", code)
	}
	return nil
}

// MinSyncKeyLen is the minimum length of a sync key. Short keys are too
// easy to collide with or guess.
const MinSyncKeyLen = 6

var syncKeyRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateSyncKey checks a ledger sync key.
func ValidateSyncKey(key string) error {
	if len(key) < MinSyncKeyLen {
		return fmt.Errorf("sync key %q is too short, want at least %d characters", key, MinSyncKeyLen)
	}
	if !syncKeyRE.MatchString(key) {
		return fmt.Errorf("sync key %q contains invalid characters", key)
	}
	return nil
}

// Validate checks a transaction for correctness and applies quick fixes
// where applicable (defaulting the date, filling the amount currency
// from the account). It returns the validated, potentially modified,
// transaction or an error.
func Validate(reg *Registry, tx Transaction) (Transaction, error) {
	ntx, err := tx.Validate(reg)
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction on %v: %w", tx.Kind(), tx.When(), err)
	}
	return ntx, nil
}
