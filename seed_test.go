package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeedFromEnv(t *testing.T) {
	t.Setenv("FD_BOC_BALANCE", "12000")
	t.Setenv("FD_MOX_DEBT", "3000")
	t.Setenv("FD_BANKING_CURRENCY", "HKD")
	t.Setenv("FD_FUTU_INVESTMENT", "not-a-number")

	cfg := SeedFromEnv()
	if !cfg.BankBalances["BOC"].Equal(D(12000)) {
		t.Errorf("BOC = %s, want 12000", cfg.BankBalances["BOC"])
	}
	if !cfg.Debts["Mox"].Equal(D(3000)) {
		t.Errorf("Mox debt = %s, want 3000", cfg.Debts["Mox"])
	}
	if cfg.BankingCurrency != HKD {
		t.Errorf("banking currency = %s, want HKD", cfg.BankingCurrency)
	}
	// unset and invalid values default to 0
	if !cfg.BankBalances["Mox"].IsZero() || !cfg.Investments["Futu"].IsZero() {
		t.Error("unset/invalid env values not zero")
	}
}

func TestSeedData(t *testing.T) {
	cfg := SeedConfig{
		BankBalances:       map[string]decimal.Decimal{"BOC": D(12000)},
		Debts:              map[string]decimal.Decimal{"Mox": D(3000)},
		Investments:        map[string]decimal.Decimal{"Futu": D(50000)},
		BankingCurrency:    HKD,
		DebtCurrency:       HKD,
		InvestmentCurrency: map[string]Currency{"Futu": HKD},
	}
	data := SeedData(cfg)

	// one asset per bank, one liability per debt, one asset per platform,
	// plus two months of income/expense history
	if got := len(data.Transactions); got != 7 {
		t.Fatalf("transactions = %d, want 7", got)
	}
	if len(data.Accounts) != 1 || data.Accounts[0].Name != "BOC" {
		t.Fatalf("accounts = %+v", data.Accounts)
	}
	if len(data.Investments) != 1 || data.Investments[0].Name != "Futu" {
		t.Fatalf("investments = %+v", data.Investments)
	}

	// the history feeds the trend charts with known values
	txs := data.Transactions
	prevIncome := MonthlyTotal(txs, TypeIncome, Today().AddMonth(-1))
	if !prevIncome.Equal(D(25000)) {
		t.Errorf("previous month seeded income = %s, want 25000", prevIncome)
	}
	prevPrevExpenses := MonthlyTotal(txs, TypeExpense, Today().AddMonth(-2))
	if !prevPrevExpenses.Equal(D(11000)) {
		t.Errorf("two months ago seeded expenses = %s, want 11000", prevPrevExpenses)
	}

	// every record passes validation
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			t.Errorf("seed transaction invalid: %v", err)
		}
	}
}
