package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"daybook/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func percentFund(t *testing.T, id string, pct string) model.Fund {
	t.Helper()
	v := dec(t, pct)
	return model.Fund{ID: id, Name: id, Balance: decimal.Zero, RuleType: model.RulePercent, RuleValue: &v}
}

func fixedFund(t *testing.T, id string, amount string) model.Fund {
	t.Helper()
	v := dec(t, amount)
	return model.Fund{ID: id, Name: id, Balance: decimal.Zero, RuleType: model.RuleFixed, RuleValue: &v}
}

func income(t *testing.T, id, amount string) model.Transaction {
	t.Helper()
	return model.Transaction{ID: id, Type: model.TypeIncome, Amount: dec(t, amount), CategoryID: "cat_salary", Date: "2024-01-15"}
}

func expense(t *testing.T, id, amount, fundID string) model.Transaction {
	t.Helper()
	return model.Transaction{ID: id, Type: model.TypeExpense, Amount: dec(t, amount), CategoryID: "cat_food", Date: "2024-01-16", FundID: fundID}
}

func balanceOf(t *testing.T, funds []model.Fund, id string) decimal.Decimal {
	t.Helper()
	for _, f := range funds {
		if f.ID == id {
			return f.Balance
		}
	}
	t.Fatalf("fund %q not found", id)
	return decimal.Zero
}

func TestRecordTransaction_IncomeAllocatesToEveryFund(t *testing.T) {
	funds := []model.Fund{
		percentFund(t, "fund_a", "10"),
		fixedFund(t, "fund_b", "5000"),
		{ID: "fund_c", Name: "manual", Balance: decimal.Zero, RuleType: model.RuleChoice},
	}

	txns, funds := RecordTransaction(income(t, "txn_1", "1000"), nil, funds)

	if len(txns) != 1 {
		t.Fatalf("transactions len = %d, want 1", len(txns))
	}
	if got := balanceOf(t, funds, "fund_a"); !got.Equal(dec(t, "100")) {
		t.Fatalf("percent fund balance = %s, want 100", got)
	}
	if got := balanceOf(t, funds, "fund_b"); !got.Equal(dec(t, "5000")) {
		t.Fatalf("fixed fund balance = %s, want 5000", got)
	}
	if got := balanceOf(t, funds, "fund_c"); !got.IsZero() {
		t.Fatalf("choice fund balance = %s, want 0", got)
	}
}

func TestRecordTransaction_AllocationLinearInAmount(t *testing.T) {
	for _, amount := range []string{"0", "1", "250", "999.99", "123456.78"} {
		funds := []model.Fund{percentFund(t, "fund_a", "7")}
		_, funds = RecordTransaction(income(t, "txn_1", amount), nil, funds)

		want := dec(t, amount).Mul(dec(t, "7")).Div(dec(t, "100"))
		if got := balanceOf(t, funds, "fund_a"); !got.Equal(want) {
			t.Fatalf("amount %s: balance = %s, want %s", amount, got, want)
		}
	}
}

func TestRecordTransaction_WithdrawalClampsAtZero(t *testing.T) {
	// The concrete scenario: 10% fund, income 1000 -> 100, then an
	// expense of 150 against the fund clamps to zero.
	funds := []model.Fund{percentFund(t, "fund_a", "10")}

	txns, funds := RecordTransaction(income(t, "txn_1", "1000"), nil, funds)
	if got := balanceOf(t, funds, "fund_a"); !got.Equal(dec(t, "100")) {
		t.Fatalf("after income: balance = %s, want 100", got)
	}

	_, funds = RecordTransaction(expense(t, "txn_2", "150", "fund_a"), txns, funds)
	if got := balanceOf(t, funds, "fund_a"); !got.IsZero() {
		t.Fatalf("after clamped withdrawal: balance = %s, want 0", got)
	}
}

func TestRecordTransaction_WithdrawalSequenceNeverNegative(t *testing.T) {
	funds := []model.Fund{fixedFund(t, "fund_a", "80")}
	txns, funds := RecordTransaction(income(t, "txn_0", "1"), nil, funds) // balance 80

	prev := balanceOf(t, funds, "fund_a")
	for i, amount := range []string{"30", "30", "30", "30"} {
		id := string(rune('a' + i))
		txns, funds = RecordTransaction(expense(t, "txn_"+id, amount, "fund_a"), txns, funds)
		got := balanceOf(t, funds, "fund_a")
		want := prev.Sub(dec(t, amount))
		if want.IsNegative() {
			want = decimal.Zero
		}
		if !got.Equal(want) {
			t.Fatalf("withdrawal %d: balance = %s, want %s", i, got, want)
		}
		prev = got
	}
}

func TestRecordTransaction_ExpenseWithoutFundHasNoEffect(t *testing.T) {
	funds := []model.Fund{percentFund(t, "fund_a", "10")}
	_, got := RecordTransaction(expense(t, "txn_1", "50", ""), nil, funds)
	if !balanceOf(t, got, "fund_a").IsZero() {
		t.Fatal("expense without fund changed a balance")
	}
}

func TestRecordTransaction_EditReversesPriorEffect(t *testing.T) {
	funds := []model.Fund{percentFund(t, "fund_a", "10")}

	txns, funds := RecordTransaction(income(t, "txn_1", "1000"), nil, funds)
	if got := balanceOf(t, funds, "fund_a"); !got.Equal(dec(t, "100")) {
		t.Fatalf("after record: balance = %s, want 100", got)
	}

	// Edit the amount down. The old allocation must be backed out, not
	// stacked on top.
	txns, funds = RecordTransaction(income(t, "txn_1", "600"), txns, funds)
	if len(txns) != 1 {
		t.Fatalf("edit appended instead of replacing: len = %d", len(txns))
	}
	if !txns[0].Amount.Equal(dec(t, "600")) {
		t.Fatalf("replaced amount = %s, want 600", txns[0].Amount)
	}
	if got := balanceOf(t, funds, "fund_a"); !got.Equal(dec(t, "60")) {
		t.Fatalf("after edit: balance = %s, want 60", got)
	}
}

func TestRecordTransaction_EditPreservesIndex(t *testing.T) {
	txns, funds := RecordTransaction(income(t, "txn_1", "10"), nil, nil)
	txns, funds = RecordTransaction(income(t, "txn_2", "20"), txns, funds)
	txns, _ = RecordTransaction(income(t, "txn_1", "30"), txns, funds)

	if txns[0].ID != "txn_1" || txns[1].ID != "txn_2" {
		t.Fatalf("edit reordered collection: [%s, %s]", txns[0].ID, txns[1].ID)
	}
}

func TestDeleteTransaction_PureFilter(t *testing.T) {
	funds := []model.Fund{percentFund(t, "fund_a", "10")}
	txns, funds := RecordTransaction(income(t, "txn_1", "1000"), nil, funds)

	txns = DeleteTransaction("txn_1", txns)
	if len(txns) != 0 {
		t.Fatalf("transactions len = %d, want 0", len(txns))
	}
	// Deletion never reverses fund effects.
	if got := balanceOf(t, funds, "fund_a"); !got.Equal(dec(t, "100")) {
		t.Fatalf("delete touched fund balance: %s", got)
	}
}

func TestMonthlyAggregate(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Type: model.TypeIncome, Amount: dec(t, "1000"), Date: "2024-01-05"},
		{ID: "b", Type: model.TypeExpense, Amount: dec(t, "300"), Date: "2024-01-20"},
		{ID: "c", Type: model.TypeExpense, Amount: dec(t, "50"), Date: "2024-02-01"},
		{ID: "d", Type: model.TypeIncome, Amount: dec(t, "999"), Date: "2023-01-05"},
	}

	s := MonthlyAggregate(txns, 1, 2024)
	if !s.TotalIncome.Equal(dec(t, "1000")) {
		t.Fatalf("TotalIncome = %s, want 1000", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(dec(t, "300")) {
		t.Fatalf("TotalExpense = %s, want 300", s.TotalExpense)
	}
	if !s.Balance.Equal(dec(t, "700")) {
		t.Fatalf("Balance = %s, want 700", s.Balance)
	}

	// Pure function: a second pass returns identical results.
	again := MonthlyAggregate(txns, 1, 2024)
	if !again.TotalIncome.Equal(s.TotalIncome) || !again.TotalExpense.Equal(s.TotalExpense) || !again.Balance.Equal(s.Balance) {
		t.Fatal("repeated aggregate differs")
	}
}

func TestDailyExpenseSeries(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Type: model.TypeExpense, Amount: dec(t, "10"), Date: "2024-02-01"},
		{ID: "b", Type: model.TypeExpense, Amount: dec(t, "5"), Date: "2024-02-01"},
		{ID: "c", Type: model.TypeExpense, Amount: dec(t, "7"), Date: "2024-02-29"},
		{ID: "d", Type: model.TypeIncome, Amount: dec(t, "100"), Date: "2024-02-10"},
	}

	series := DailyExpenseSeries(txns, 2, 2024)
	if len(series) != 29 {
		t.Fatalf("series len = %d, want 29 (leap February)", len(series))
	}
	if series[0] != 15 {
		t.Fatalf("day 1 spend = %.2f, want 15", series[0])
	}
	if series[28] != 7 {
		t.Fatalf("day 29 spend = %.2f, want 7", series[28])
	}
	if series[9] != 0 {
		t.Fatalf("income leaked into expense series: %.2f", series[9])
	}
}

func TestFundsTotal(t *testing.T) {
	a := percentFund(t, "fund_a", "10")
	a.Balance = dec(t, "12.50")
	b := fixedFund(t, "fund_b", "100")
	b.Balance = dec(t, "7.50")

	if got := FundsTotal([]model.Fund{a, b}); !got.Equal(dec(t, "20")) {
		t.Fatalf("FundsTotal = %s, want 20", got)
	}
	if got := FundsTotal(nil); !got.IsZero() {
		t.Fatalf("FundsTotal(nil) = %s, want 0", got)
	}
}

func TestSaveFund_UpsertPreservesOrder(t *testing.T) {
	funds := []model.Fund{percentFund(t, "fund_a", "10"), fixedFund(t, "fund_b", "100")}

	edited := funds[0]
	edited.Name = "renamed"
	funds = SaveFund(edited, funds)

	if len(funds) != 2 {
		t.Fatalf("funds len = %d, want 2", len(funds))
	}
	if funds[0].Name != "renamed" {
		t.Fatalf("funds[0].Name = %q, want renamed", funds[0].Name)
	}

	funds = SaveFund(percentFund(t, "fund_c", "5"), funds)
	if len(funds) != 3 || funds[2].ID != "fund_c" {
		t.Fatal("new fund not appended")
	}
}

func TestDeleteFund_LeavesTransactionsDangling(t *testing.T) {
	funds := []model.Fund{percentFund(t, "fund_a", "10")}
	txns := []model.Transaction{expense(t, "txn_1", "5", "fund_a")}

	funds = DeleteFund("fund_a", funds)
	if len(funds) != 0 {
		t.Fatalf("funds len = %d, want 0", len(funds))
	}
	if txns[0].FundID != "fund_a" {
		t.Fatal("transaction fund reference was rewritten")
	}
}

func TestValidateTransaction(t *testing.T) {
	categories := []model.Category{
		{ID: "cat_food", Name: "Food", Type: model.TypeExpense},
		{ID: "cat_salary", Name: "Salary", Type: model.TypeIncome},
	}

	tests := []struct {
		name    string
		txn     model.Transaction
		wantErr error
	}{
		{"valid expense", expense(t, "txn_1", "10", ""), nil},
		{"valid income", income(t, "txn_2", "10"), nil},
		{"zero amount", model.Transaction{Type: model.TypeExpense, Amount: decimal.Zero, CategoryID: "cat_food"}, ErrAmountNotPositive},
		{"missing category", model.Transaction{Type: model.TypeExpense, Amount: dec(t, "1")}, ErrMissingCategory},
		{"type mismatch", model.Transaction{Type: model.TypeIncome, Amount: dec(t, "1"), CategoryID: "cat_food"}, ErrCategoryTypeMismatch},
		{"unknown type", model.Transaction{Type: "transfer", Amount: dec(t, "1"), CategoryID: "cat_food"}, ErrInvalidType},
		// A dangling category reference is tolerated, not rejected.
		{"dangling category", model.Transaction{Type: model.TypeExpense, Amount: dec(t, "1"), CategoryID: "cat_gone"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransaction(tc.txn, categories)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
