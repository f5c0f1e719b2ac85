package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// RuleType selects how a fund is replenished from income.
type RuleType string

const (
	// RulePercent allocates a percentage of every income transaction.
	RulePercent RuleType = "percent"
	// RuleFixed allocates a fixed amount from every income transaction.
	RuleFixed RuleType = "fixed"
	// RuleChoice means the fund is only ever funded manually.
	RuleChoice RuleType = "choice"
)

// Valid reports whether r is one of the known rule types.
func (r RuleType) Valid() bool {
	switch r {
	case RulePercent, RuleFixed, RuleChoice:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Immutable once created except
// for full-record replacement keyed by ID.
type Transaction struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId"`
	Comment    string          `json:"comment,omitempty"`
	Date       string          `json:"date"` // YYYY-MM-DD calendar date, no time
	// FundID names the fund an expense is withdrawn from. Only
	// meaningful when Type is expense; may dangle after fund deletion.
	FundID    string    `json:"fundId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category labels transactions. Its type must match the type of any
// transaction referencing it.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}

// Fund is a named sub-balance replenished automatically from income per
// its rule and optionally debited directly by expenses. Balance is a
// derived-but-persisted running total mutated only by the ledger engine.
type Fund struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Balance   decimal.Decimal  `json:"balance"`
	RuleType  RuleType         `json:"ruleType"`
	RuleValue *decimal.Decimal `json:"ruleValue,omitempty"` // nil for choice
	CreatedAt time.Time        `json:"createdAt"`
}

// RuleDescription returns a short human-readable form of the fund rule.
func (f Fund) RuleDescription() string {
	switch {
	case f.RuleType == RulePercent && f.RuleValue != nil:
		return f.RuleValue.String() + "% of income"
	case f.RuleType == RuleFixed && f.RuleValue != nil:
		return f.RuleValue.String() + " per income"
	default:
		return "manual"
	}
}
