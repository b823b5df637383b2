package dashboard

import (
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// SeedConfig carries the opening balances a fresh data folder is seeded
// with. All values come from FD_* environment variables so real balances
// never live in the source tree.
type SeedConfig struct {
	BankBalances map[string]decimal.Decimal // bank name to opening balance
	Debts        map[string]decimal.Decimal // debt name to amount owed
	Investments  map[string]decimal.Decimal // platform name to invested amount

	BankingCurrency    Currency
	DebtCurrency       Currency
	InvestmentCurrency map[string]Currency // per platform, defaults to BankingCurrency
}

// envDecimal reads a decimal from the environment, 0 when unset or invalid.
func envDecimal(key string) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return decimal.Zero
	}
	if _, err := strconv.ParseFloat(v, 64); err != nil {
		log.Printf("warning, %s=%q is not a number, using 0", key, v)
		return decimal.Zero
	}
	d, _ := decimal.NewFromString(v)
	return d
}

// envCurrency reads a currency code from the environment with a default.
func envCurrency(key string, def Currency) Currency {
	if v := os.Getenv(key); v != "" {
		return Currency(v)
	}
	return def
}

// SeedFromEnv builds the seed configuration from FD_* environment variables:
// FD_BOC_BALANCE, FD_MOX_BALANCE, FD_MOX_DEBT, FD_MPOWER_DEBT,
// FD_TRAVEL_PLUS_DEBT, FD_UNI_LOAN_DEBT, FD_BINANCE_INVESTMENT,
// FD_FUTU_INVESTMENT, FD_BANKING_CURRENCY, FD_DEBT_CURRENCY,
// FD_INVESTMENT_CURRENCY_USD, FD_INVESTMENT_CURRENCY_HKD.
func SeedFromEnv() SeedConfig {
	banking := envCurrency("FD_BANKING_CURRENCY", USD)
	return SeedConfig{
		BankBalances: map[string]decimal.Decimal{
			"BOC": envDecimal("FD_BOC_BALANCE"),
			"Mox": envDecimal("FD_MOX_BALANCE"),
		},
		Debts: map[string]decimal.Decimal{
			"Mox":      envDecimal("FD_MOX_DEBT"),
			"MPower":   envDecimal("FD_MPOWER_DEBT"),
			"Travel +": envDecimal("FD_TRAVEL_PLUS_DEBT"),
			"Uni loan": envDecimal("FD_UNI_LOAN_DEBT"),
		},
		Investments: map[string]decimal.Decimal{
			"Binance": envDecimal("FD_BINANCE_INVESTMENT"),
			"Futu":    envDecimal("FD_FUTU_INVESTMENT"),
		},
		BankingCurrency: banking,
		DebtCurrency:    envCurrency("FD_DEBT_CURRENCY", USD),
		InvestmentCurrency: map[string]Currency{
			"Binance": envCurrency("FD_INVESTMENT_CURRENCY_USD", USD),
			"Futu":    envCurrency("FD_INVESTMENT_CURRENCY_HKD", HKD),
		},
	}
}

// SeedData builds the full seed data set: opening balance declarations for
// each bank, debt and platform, plus two months of salary and expense
// history so the trend charts are not empty on first run.
func SeedData(cfg SeedConfig) Data {
	var data Data
	today := Today()

	for _, name := range sortedKeys(cfg.BankBalances) {
		balance := cfg.BankBalances[name]
		tx := NewTransaction(TypeAsset, balance, cfg.BankingCurrency, InitialBalanceLabel, "Initial "+name+" balance", today)
		tx.Account = "savings"
		data.Transactions = append(data.Transactions, tx)
		data.Accounts = append(data.Accounts, NewAccount(name, Savings, balance, cfg.BankingCurrency))
	}

	for _, name := range sortedKeys(cfg.Debts) {
		tx := NewTransaction(TypeLiability, cfg.Debts[name], cfg.DebtCurrency, DebtLabel, "Initial "+name+" debt", today)
		tx.Account = "credit_card"
		data.Transactions = append(data.Transactions, tx)
	}

	for _, name := range sortedKeys(cfg.Investments) {
		amount := cfg.Investments[name]
		cur, ok := cfg.InvestmentCurrency[name]
		if !ok {
			cur = cfg.BankingCurrency
		}
		tx := NewTransaction(TypeAsset, amount, cur, string(OtherAsset), "Initial "+name+" investment", today)
		tx.Account = "investment"
		data.Transactions = append(data.Transactions, tx)

		inv := NewInvestment(name, OtherAsset, decimal.NewFromInt(1), amount, today, cur)
		inv.Description = "Initial " + name + " investment account"
		data.Investments = append(data.Investments, inv)
	}

	// Two months of history for the trend charts.
	history := []struct {
		monthsAgo   int
		txType      TransactionType
		amount      int64
		category    string
		description string
	}{
		{1, TypeIncome, 25000, "salary", "Previous Month Salary"},
		{1, TypeExpense, 12000, "other", "Previous Month Expenses"},
		{2, TypeIncome, 25000, "salary", "Two Months Ago Salary"},
		{2, TypeExpense, 11000, "other", "Two Months Ago Expenses"},
	}
	for _, h := range history {
		tx := NewTransaction(h.txType, decimal.NewFromInt(h.amount), HKD, h.category, h.description, today.AddMonth(-h.monthsAgo))
		tx.Account = "checking"
		data.Transactions = append(data.Transactions, tx)
	}

	return data
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// deterministic seed data regardless of map iteration order
	slices.Sort(keys)
	return keys
}
