package dashboard

import "encoding/json"

// CategoryKind discriminates what family a category string belongs to.
// The same code ("other") exists in several families, so the kind is
// resolved from the owning transaction's type, never from the string alone.
type CategoryKind int

const (
	// ExpenseKind is one of the expense category codes.
	ExpenseKind CategoryKind = iota
	// IncomeKind is one of the income category codes.
	IncomeKind
	// InvestmentKind is one of the investment type codes.
	InvestmentKind
	// LabelKind is a freeform label, like the "Initial Balance" and "Debt"
	// labels the setup wizard writes.
	LabelKind
)

// Expense category codes.
var expenseCategories = []string{
	"food", "transportation", "entertainment", "healthcare",
	"education", "shopping", "utilities", "other",
}

// Income category codes.
var incomeCategories = []string{
	"salary", "freelance", "investment_return", "business", "other",
}

// Labels written by the setup wizard.
const (
	InitialBalanceLabel = "Initial Balance"
	DebtLabel           = "Debt"
)

// Category is the tagged category of a transaction: an expense code, an
// income code, an investment type, or a freeform label. It serializes as the
// plain string so data files stay human readable.
type Category struct {
	kind  CategoryKind
	value string
}

// ExpenseCategories returns the known expense category codes.
func ExpenseCategories() []string { return append([]string(nil), expenseCategories...) }

// IncomeCategories returns the known income category codes.
func IncomeCategories() []string { return append([]string(nil), incomeCategories...) }

// Label returns a freeform label category.
func Label(s string) Category { return Category{kind: LabelKind, value: s} }

// ParseCategoryFor resolves a category string against the enum family implied
// by the transaction type. Unknown strings become labels, they are never an
// error: imported data keeps whatever category it carried.
func ParseCategoryFor(t TransactionType, s string) Category {
	switch t {
	case TypeExpense:
		for _, c := range expenseCategories {
			if c == s {
				return Category{kind: ExpenseKind, value: s}
			}
		}
	case TypeIncome:
		for _, c := range incomeCategories {
			if c == s {
				return Category{kind: IncomeKind, value: s}
			}
		}
	case TypeInvestment:
		for _, c := range investmentTypes {
			if c == s {
				return Category{kind: InvestmentKind, value: s}
			}
		}
	}
	return Label(s)
}

// Kind returns the category family.
func (c Category) Kind() CategoryKind { return c.kind }

// String returns the category code or label.
func (c Category) String() string { return c.value }

// IsZero reports whether the category is unset.
func (c Category) IsZero() bool { return c.value == "" }

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.value) }

// UnmarshalJSON reads the plain string form. The kind defaults to label; the
// owning transaction re-resolves it once its type is known.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Label(s)
	return nil
}

var _ json.Marshaler = (*Category)(nil)
var _ json.Unmarshaler = (*Category)(nil)
