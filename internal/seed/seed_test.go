package seed

import (
	"testing"

	"daybook/internal/model"
)

func TestApply_FreshDocument(t *testing.T) {
	doc, changed := Apply(model.Document{})
	if !changed {
		t.Fatal("fresh document reported unchanged")
	}
	if len(doc.FinanceCategories) != 8 {
		t.Fatalf("categories = %d, want 8", len(doc.FinanceCategories))
	}
	if len(doc.Funds) != 2 {
		t.Fatalf("funds = %d, want 2", len(doc.Funds))
	}
	for _, f := range doc.Funds {
		if !f.Balance.IsZero() {
			t.Fatalf("fund %s seeded with balance %s", f.ID, f.Balance)
		}
	}
	if doc.Actions == nil || doc.Transactions == nil {
		t.Fatal("collections left nil")
	}
}

func TestApply_Idempotent(t *testing.T) {
	doc, _ := Apply(model.Document{})
	again, changed := Apply(doc)
	if changed {
		t.Fatal("second apply reported a change")
	}
	if len(again.FinanceCategories) != len(doc.FinanceCategories) {
		t.Fatal("second apply altered categories")
	}
}

func TestApply_EmptiedCollectionsStayEmpty(t *testing.T) {
	doc := model.Document{
		FinanceCategories: []model.Category{},
		Funds:             []model.Fund{},
		Actions:           []model.Action{},
		Transactions:      []model.Transaction{},
	}
	out, changed := Apply(doc)
	if changed {
		t.Fatal("emptied document reported changed")
	}
	if len(out.FinanceCategories) != 0 || len(out.Funds) != 0 {
		t.Fatal("explicitly emptied collections were reseeded")
	}
}

func TestDefaultCategories_TypesValid(t *testing.T) {
	var income, expense int
	for _, c := range DefaultCategories() {
		if !c.Type.Valid() {
			t.Fatalf("category %s has invalid type %q", c.ID, c.Type)
		}
		if c.Type == model.TypeIncome {
			income++
		} else {
			expense++
		}
	}
	if income != 3 || expense != 5 {
		t.Fatalf("income/expense split = %d/%d, want 3/5", income, expense)
	}
}
