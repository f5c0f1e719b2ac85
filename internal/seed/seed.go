// Package seed provides the default categories and funds a fresh
// document starts with. Seeding happens exactly once, when the finance
// collections are still absent.
package seed

import (
	"github.com/shopspring/decimal"

	"daybook/internal/model"
)

// DefaultCategories returns the built-in income and expense categories.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "cat_salary", Name: "Salary", Type: model.TypeIncome},
		{ID: "cat_freelance", Name: "Freelance", Type: model.TypeIncome},
		{ID: "cat_other_income", Name: "Other income", Type: model.TypeIncome},
		{ID: "cat_food", Name: "Food", Type: model.TypeExpense},
		{ID: "cat_transport", Name: "Transport", Type: model.TypeExpense},
		{ID: "cat_housing", Name: "Housing", Type: model.TypeExpense},
		{ID: "cat_entertainment", Name: "Entertainment", Type: model.TypeExpense},
		{ID: "cat_other_expense", Name: "Other", Type: model.TypeExpense},
	}
}

// DefaultFunds returns the two starter funds: a percent-rule emergency
// cushion and a fixed-rule vacation fund.
func DefaultFunds() []model.Fund {
	ten := decimal.NewFromInt(10)
	fixed := decimal.NewFromInt(5000)
	return []model.Fund{
		{ID: "fund_emergency", Name: "Emergency cushion", Balance: decimal.Zero, RuleType: model.RulePercent, RuleValue: &ten},
		{ID: "fund_vacation", Name: "Vacation", Balance: decimal.Zero, RuleType: model.RuleFixed, RuleValue: &fixed},
	}
}

// Apply fills absent collections. The finance defaults are applied only
// when financeCategories has never been written; an explicitly emptied
// collection stays empty. Returns the (possibly new) document and
// whether anything was seeded.
func Apply(doc model.Document) (model.Document, bool) {
	changed := false
	if doc.FinanceCategories == nil {
		doc.FinanceCategories = DefaultCategories()
		if doc.Funds == nil {
			doc.Funds = DefaultFunds()
		}
		if doc.Transactions == nil {
			doc.Transactions = []model.Transaction{}
		}
		changed = true
	}
	if doc.Actions == nil {
		doc.Actions = []model.Action{}
		changed = true
	}
	return doc, changed
}
