package dashboard

import (
	"encoding/json"
	"testing"
)

func TestParseCategoryFor(t *testing.T) {
	tests := []struct {
		name   string
		txType TransactionType
		input  string
		kind   CategoryKind
	}{
		{"expense code", TypeExpense, "food", ExpenseKind},
		{"income code", TypeIncome, "salary", IncomeKind},
		{"investment code", TypeInvestment, "crypto", InvestmentKind},
		// "other" exists in three families: the transaction type decides
		{"other as expense", TypeExpense, "other", ExpenseKind},
		{"other as income", TypeIncome, "other", IncomeKind},
		{"other as investment", TypeInvestment, "other", InvestmentKind},
		// codes from the wrong family degrade to labels
		{"salary on an expense", TypeExpense, "salary", LabelKind},
		{"wizard label", TypeAsset, InitialBalanceLabel, LabelKind},
		{"debt label", TypeLiability, DebtLabel, LabelKind},
		{"freeform", TypeExpense, "holiday 2026", LabelKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCategoryFor(tt.txType, tt.input)
			if got.Kind() != tt.kind || got.String() != tt.input {
				t.Errorf("ParseCategoryFor(%s, %q) = %q kind %d, want kind %d",
					tt.txType, tt.input, got, got.Kind(), tt.kind)
			}
		})
	}
}

func TestTransactionJSON(t *testing.T) {
	tx := NewTransaction(TypeExpense, D(120.50), USD, "food", "lunch", MustParseDate("2026-08-10"))
	tx.Account = "checking"

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	// the category serializes as the plain string
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["category"] != "food" {
		t.Errorf("category serialized as %v, want \"food\"", raw["category"])
	}
	if raw["date"] != "2026-08-10" {
		t.Errorf("date serialized as %v", raw["date"])
	}

	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Category.Kind() != ExpenseKind {
		t.Errorf("decoded category kind = %d, want expense", back.Category.Kind())
	}
	if !back.Amount.Equal(D(120.50)) || back.Account != "checking" {
		t.Errorf("round trip = %+v", back)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := income(100, "salary", "2026-08-01")
	if err := good.Validate(); err != nil {
		t.Errorf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"no id", func(tx *Transaction) { tx.ID = "" }},
		{"bad type", func(tx *Transaction) { tx.Type = "mystery" }},
		{"negative amount", func(tx *Transaction) { tx.Amount = D(-1) }},
		{"zero date", func(tx *Transaction) { tx.Date = Date{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := income(100, "salary", "2026-08-01")
			tt.mutate(&tx)
			if err := tx.Validate(); err == nil {
				t.Error("invalid transaction accepted")
			}
		})
	}
}

func TestTransactionPatchRetypesCategory(t *testing.T) {
	tx := expense(100, "other", "2026-08-01")
	if tx.Category.Kind() != ExpenseKind {
		t.Fatalf("kind = %d", tx.Category.Kind())
	}

	// retyping the transaction re-resolves "other" in the new family
	newType := TypeIncome
	TransactionPatch{Type: &newType}.apply(&tx)
	if tx.Category.Kind() != IncomeKind {
		t.Errorf("after retype kind = %d, want income", tx.Category.Kind())
	}
}
