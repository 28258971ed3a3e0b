// Package moneybook implements a personal multi-currency expense ledger.
// It is local-first: transactions live in a plain JSONL file, account and
// exchange-rate configuration in a JSON file next to it, and everything
// derived (balances, net worth, trends, statistics) is recomputed from
// those inputs by pure functions.
//
// The core pieces:
//   - Ledger: an append/delete-only log of income, expense, transfer and
//     adjustment transactions, ordered by creation time.
//   - Registry: the set of user accounts (id, name, currency) plus the
//     exchange-rate table into the base currency (TWD by default).
//   - ComputeBalances: folds the log into per-account balances.
//   - NewValuation: converts balances into a single base-currency total.
//   - reports_*.go: trend, cashflow, category breakdown and expense
//     statistics over a rolling day window.
//   - Persistence: JSONL encoding of the ledger and CSV import/export.
//
// This package is the foundation of the `mbk` command-line tool.
package moneybook
