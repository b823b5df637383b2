package dashboard

import (
	"slices"

	"github.com/shopspring/decimal"
)

// This file is the aggregation engine: pure functions over a slice of
// transactions. Sums are face-value: amounts in different currencies add up
// as-is, a deliberate simplification carried by the whole reporting surface.

// TotalByType sums the amounts of all transactions of the given type.
func TotalByType(txs []Transaction, t TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == t {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// MonthlyTotal sums the amounts of all transactions of the given type that
// fall in the calendar month of 'anchor', both ends inclusive.
func MonthlyTotal(txs []Transaction, t TransactionType, anchor Date) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if tx.Type == t && tx.Date.SameMonth(anchor) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// FilterByPeriod returns the transactions whose date falls in the period
// anchored on 'ref'. Order is preserved.
func FilterByPeriod(txs []Transaction, p Period, ref Date) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if p.Contains(tx.Date, ref) {
			out = append(out, tx)
		}
	}
	return out
}

// NetWorth is the headline figure of the summary cards: income minus
// expenses plus investments. It is a cash-flow view, distinct from the
// balance-sheet assets minus liabilities that BalanceNetWorth reports.
func NetWorth(income, expenses, investments decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses).Add(investments)
}

// BalanceNetWorth is assets minus liabilities over the given transactions.
func BalanceNetWorth(txs []Transaction) decimal.Decimal {
	return TotalByType(txs, TypeAsset).Sub(TotalByType(txs, TypeLiability))
}

// MonthlyTrend is one month's point on the income/expense trend chart.
type MonthlyTrend struct {
	Month    string // label like "Aug 2026"
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// MonthlyTrends returns exactly 'months' points, oldest first, ending at the
// month of 'now'. Months with no transactions still get a point, with zero
// values, so charts always span the full window.
func MonthlyTrends(txs []Transaction, months int, now Date) []MonthlyTrend {
	trends := make([]MonthlyTrend, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := now.AddMonth(-i)
		income := MonthlyTotal(txs, TypeIncome, month)
		expenses := MonthlyTotal(txs, TypeExpense, month)
		trends = append(trends, MonthlyTrend{
			Month:    month.MonthLabel(),
			Income:   income,
			Expenses: expenses,
			Savings:  income.Sub(expenses),
		})
	}
	return trends
}

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Count    int
	// Share of the grand total, attached by WithShares.
	Share Percent
}

// GroupByCategory groups the transactions of the given type by category,
// sorted by amount descending. Transactions of the same category in
// different currencies land in the same bucket, face value.
func GroupByCategory(txs []Transaction, t TransactionType) []CategoryTotal {
	var order []string
	totals := make(map[string]*CategoryTotal)
	for _, tx := range txs {
		if tx.Type != t {
			continue
		}
		key := tx.Category.String()
		ct, ok := totals[key]
		if !ok {
			ct = &CategoryTotal{Category: key}
			totals[key] = ct
			order = append(order, key)
		}
		ct.Amount = ct.Amount.Add(tx.Amount)
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		out = append(out, *totals[key])
	}
	// stable: categories with equal amounts keep first-seen order
	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})
	return out
}

// WithShares attaches each category's share of the grand total. A zero
// total yields zero shares, never a division by zero.
func WithShares(breakdown []CategoryTotal) []CategoryTotal {
	total := decimal.Zero
	for _, ct := range breakdown {
		total = total.Add(ct.Amount)
	}
	out := slices.Clone(breakdown)
	if total.IsZero() {
		return out
	}
	for i := range out {
		out[i].Share = Percent(out[i].Amount.Div(total).InexactFloat64() * 100)
	}
	return out
}

// trendOf turns a current and previous month value into a Trend. A zero
// previous month has no meaningful percentage: the trend is flat and its
// direction is the sign of the current value.
func trendOf(current, previous decimal.Decimal) Trend {
	if previous.IsZero() {
		return Trend{Value: 0, IsPositive: !current.IsNegative()}
	}
	change := current.Sub(previous).Div(previous.Abs()).InexactFloat64() * 100
	return Trend{Value: Percent(abs(change)), IsPositive: change >= 0}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// MonthlyTrendOf compares the current calendar month of 'now' against the
// previous one for the given transaction type.
func MonthlyTrendOf(txs []Transaction, t TransactionType, now Date) Trend {
	current := MonthlyTotal(txs, t, now)
	previous := MonthlyTotal(txs, t, now.AddMonth(-1))
	if previous.IsZero() {
		return Trend{Value: 0, IsPositive: !current.IsNegative()}
	}
	// Type totals are never negative, so no Abs on the denominator here.
	change := current.Sub(previous).Div(previous).InexactFloat64() * 100
	return Trend{Value: Percent(abs(change)), IsPositive: change >= 0}
}

// NetWorthTrend compares this month's assets minus liabilities against last
// month's. The denominator uses the absolute previous value so that a
// recovering negative month reads as a positive trend.
func NetWorthTrend(txs []Transaction, now Date) Trend {
	current := monthBalance(txs, now)
	previous := monthBalance(txs, now.AddMonth(-1))
	return trendOf(current, previous)
}

// monthBalance is assets minus liabilities within one calendar month.
func monthBalance(txs []Transaction, anchor Date) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		if !tx.Date.SameMonth(anchor) {
			continue
		}
		switch tx.Type {
		case TypeAsset:
			sum = sum.Add(tx.Amount)
		case TypeLiability:
			sum = sum.Sub(tx.Amount)
		}
	}
	return sum
}

// DashboardSummary is everything the summary cards show for one period.
type DashboardSummary struct {
	Period           Period
	Date             Date
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal // assets minus liabilities over the period

	// Trends always compare full calendar months, regardless of the
	// period filter above.
	IncomeTrend   Trend
	ExpenseTrend  Trend
	AssetTrend    Trend
	NetWorthTrend Trend
}

// Summarize computes the dashboard summary: totals over the period filter,
// month-over-month trends over the full history.
func Summarize(txs []Transaction, p Period, now Date) DashboardSummary {
	filtered := FilterByPeriod(txs, p, now)
	return DashboardSummary{
		Period:           p,
		Date:             now,
		TotalIncome:      TotalByType(filtered, TypeIncome),
		TotalExpenses:    TotalByType(filtered, TypeExpense),
		TotalAssets:      TotalByType(filtered, TypeAsset),
		TotalLiabilities: TotalByType(filtered, TypeLiability),
		NetWorth:         BalanceNetWorth(filtered),
		IncomeTrend:      MonthlyTrendOf(txs, TypeIncome, now),
		ExpenseTrend:     MonthlyTrendOf(txs, TypeExpense, now),
		AssetTrend:       MonthlyTrendOf(txs, TypeAsset, now),
		NetWorthTrend:    NetWorthTrend(txs, now),
	}
}

// Averages are the key metrics of the analytics page over a trend window.
type Averages struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	MonthlySavings  decimal.Decimal
	SavingsRate     Percent
}

// AverageMetrics divides the all-time income and expense totals by the
// window length, the way the analytics page frames its key metrics. Zero
// income yields a zero savings rate.
func AverageMetrics(txs []Transaction, months int) Averages {
	if months <= 0 {
		return Averages{}
	}
	n := decimal.NewFromInt(int64(months))
	income := TotalByType(txs, TypeIncome).Div(n)
	expenses := TotalByType(txs, TypeExpense).Div(n)
	savings := income.Sub(expenses)
	a := Averages{MonthlyIncome: income, MonthlyExpenses: expenses, MonthlySavings: savings}
	if income.IsPositive() {
		a.SavingsRate = Percent(savings.Div(income).InexactFloat64() * 100)
	}
	return a
}

// ComparisonRow compares one measure between the current and previous month.
type ComparisonRow struct {
	Measure  string
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// Comparison builds the current-versus-previous-month rows from a trend
// window. Fewer than two points yields zero previous values.
func Comparison(trends []MonthlyTrend) []ComparisonRow {
	var current, previous MonthlyTrend
	if len(trends) >= 1 {
		current = trends[len(trends)-1]
	}
	if len(trends) >= 2 {
		previous = trends[len(trends)-2]
	}
	return []ComparisonRow{
		{Measure: "Income", Current: current.Income, Previous: previous.Income},
		{Measure: "Expenses", Current: current.Expenses, Previous: previous.Expenses},
		{Measure: "Savings", Current: current.Savings, Previous: previous.Savings},
	}
}
