// Package ledger implements the finance engine: transaction upserts with
// automatic fund allocation, fund withdrawals, and monthly aggregates.
// Every operation is a pure function from (current collections, input)
// to new collections; the caller persists the result as one document
// write.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"daybook/internal/model"
)

var hundred = decimal.NewFromInt(100)

// AllocationFor computes how much of an income amount the fund captures
// under its rule. Choice funds and funds without a rule value capture
// nothing.
func AllocationFor(f model.Fund, amount decimal.Decimal) decimal.Decimal {
	if f.RuleValue == nil {
		return decimal.Zero
	}
	switch f.RuleType {
	case model.RulePercent:
		return amount.Mul(*f.RuleValue).Div(hundred)
	case model.RuleFixed:
		return *f.RuleValue
	default:
		return decimal.Zero
	}
}

// RecordTransaction upserts a transaction and applies its fund side
// effect, returning the new transaction and fund collections.
//
// An income transaction allocates to every fund simultaneously and
// independently per each fund's rule; funds are not capped by the income
// amount. An expense with a fund reference withdraws from that fund,
// clamped at zero. Expenses without a fund, and incomes carrying a stray
// fund reference, have no fund effect.
//
// When the transaction id already exists the record is replaced in place
// and the prior version's fund effect is reversed before the new one is
// applied, so editing an amount does not double-count fund balances.
// Reversal uses the funds' current rules and clamps at zero, so a
// withdrawal that was itself clamped cannot be perfectly undone.
func RecordTransaction(txn model.Transaction, transactions []model.Transaction, funds []model.Fund) ([]model.Transaction, []model.Fund) {
	newFunds := funds
	existing := -1
	for i, t := range transactions {
		if t.ID == txn.ID {
			existing = i
			break
		}
	}
	if existing >= 0 {
		newFunds = reverseEffect(transactions[existing], newFunds)
	}
	newFunds = applyEffect(txn, newFunds)

	var newTxns []model.Transaction
	if existing >= 0 {
		newTxns = make([]model.Transaction, len(transactions))
		copy(newTxns, transactions)
		newTxns[existing] = txn
	} else {
		newTxns = make([]model.Transaction, 0, len(transactions)+1)
		newTxns = append(newTxns, transactions...)
		newTxns = append(newTxns, txn)
	}
	return newTxns, newFunds
}

func applyEffect(txn model.Transaction, funds []model.Fund) []model.Fund {
	switch {
	case txn.Type == model.TypeIncome:
		out := make([]model.Fund, len(funds))
		for i, f := range funds {
			f.Balance = f.Balance.Add(AllocationFor(f, txn.Amount))
			out[i] = f
		}
		return out
	case txn.Type == model.TypeExpense && txn.FundID != "":
		out := make([]model.Fund, len(funds))
		for i, f := range funds {
			if f.ID == txn.FundID {
				f.Balance = clampZero(f.Balance.Sub(txn.Amount))
			}
			out[i] = f
		}
		return out
	default:
		return funds
	}
}

func reverseEffect(txn model.Transaction, funds []model.Fund) []model.Fund {
	switch {
	case txn.Type == model.TypeIncome:
		out := make([]model.Fund, len(funds))
		for i, f := range funds {
			f.Balance = clampZero(f.Balance.Sub(AllocationFor(f, txn.Amount)))
			out[i] = f
		}
		return out
	case txn.Type == model.TypeExpense && txn.FundID != "":
		out := make([]model.Fund, len(funds))
		for i, f := range funds {
			if f.ID == txn.FundID {
				f.Balance = f.Balance.Add(txn.Amount)
			}
			out[i] = f
		}
		return out
	default:
		return funds
	}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// DeleteTransaction removes the record by id. It is a pure filter: prior
// fund balance effects are deliberately not reversed.
func DeleteTransaction(id string, transactions []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// SaveFund upserts a fund by id, preserving slice order on replacement.
func SaveFund(fund model.Fund, funds []model.Fund) []model.Fund {
	for i, f := range funds {
		if f.ID == fund.ID {
			out := make([]model.Fund, len(funds))
			copy(out, funds)
			out[i] = fund
			return out
		}
	}
	out := make([]model.Fund, 0, len(funds)+1)
	out = append(out, funds...)
	out = append(out, fund)
	return out
}

// DeleteFund removes a fund by id. Transaction history is untouched, so
// a transaction's fund reference can dangle afterwards.
func DeleteFund(id string, funds []model.Fund) []model.Fund {
	out := make([]model.Fund, 0, len(funds))
	for _, f := range funds {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// MonthlySummary holds the income/expense totals for one calendar month.
type MonthlySummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// MonthlyAggregate sums transactions whose date falls in the given
// calendar month. A full scan every time; no incremental index.
func MonthlyAggregate(transactions []model.Transaction, month int, year int) MonthlySummary {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	s := MonthlySummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, t := range transactions {
		if len(t.Date) < len(prefix) || t.Date[:len(prefix)] != prefix {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case model.TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// MonthTransactions returns the transactions dated within the given
// calendar month, most recent date first.
func MonthTransactions(transactions []model.Transaction, month int, year int) []model.Transaction {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var out []model.Transaction
	for _, t := range transactions {
		if len(t.Date) >= len(prefix) && t.Date[:len(prefix)] == prefix {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// DailyExpenseSeries returns one expense total per day of the month,
// index 0 = the 1st. Feeds the month view sparkline.
func DailyExpenseSeries(transactions []model.Transaction, month int, year int) []float64 {
	days := daysInMonth(month, year)
	series := make([]float64, days)
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		if len(t.Date) != len(prefix)+2 || t.Date[:len(prefix)] != prefix {
			continue
		}
		day := int(t.Date[len(prefix)]-'0')*10 + int(t.Date[len(prefix)+1]-'0')
		if day >= 1 && day <= days {
			f, _ := t.Amount.Float64()
			series[day-1] += f
		}
	}
	return series
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// FundsTotal returns the sum of all fund balances.
func FundsTotal(funds []model.Fund) decimal.Decimal {
	total := decimal.Zero
	for _, f := range funds {
		total = total.Add(f.Balance)
	}
	return total
}

// Validation errors returned by ValidateTransaction.
var (
	ErrAmountNotPositive    = errors.New("amount must be positive")
	ErrMissingCategory      = errors.New("category is required")
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
	ErrInvalidType          = errors.New("unknown transaction type")
)

// ValidateTransaction checks a transaction before it is recorded. The
// engine operations themselves trust their inputs; this is the gate the
// input surface calls first. A category id that resolves to nothing is
// tolerated (the reference may dangle after category deletion), but a
// resolvable category must agree with the transaction type.
func ValidateTransaction(txn model.Transaction, categories []model.Category) error {
	if !txn.Type.Valid() {
		return ErrInvalidType
	}
	if !txn.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if txn.CategoryID == "" {
		return ErrMissingCategory
	}
	for _, c := range categories {
		if c.ID == txn.CategoryID {
			if c.Type != txn.Type {
				return fmt.Errorf("%w: category %q is %s", ErrCategoryTypeMismatch, c.Name, c.Type)
			}
			return nil
		}
	}
	return nil
}
