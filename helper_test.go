package dashboard

import "github.com/shopspring/decimal"

// D is a helper for tests to create a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// tx is a helper for tests to create a dated transaction.
func tx(t TransactionType, amount float64, cur Currency, category, day string) Transaction {
	return NewTransaction(t, D(amount), cur, category, "", MustParseDate(day))
}

// income, expense and asset build HKD transactions, the common case in tests.

func income(amount float64, category, day string) Transaction {
	return tx(TypeIncome, amount, HKD, category, day)
}

func expense(amount float64, category, day string) Transaction {
	return tx(TypeExpense, amount, HKD, category, day)
}

func asset(amount float64, day string) Transaction {
	return tx(TypeAsset, amount, HKD, InitialBalanceLabel, day)
}

func liability(amount float64, day string) Transaction {
	return tx(TypeLiability, amount, HKD, DebtLabel, day)
}
