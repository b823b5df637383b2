package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

var now = MustParseDate("2026-08-28")

func TestTotalByType(t *testing.T) {
	txs := []Transaction{
		income(25000, "salary", "2026-08-01"),
		income(1000, "freelance", "2026-08-15"),
		expense(12000, "other", "2026-08-10"),
		tx(TypeIncome, 100, USD, "salary", "2026-08-20"),
	}

	// face-value sum: the USD 100 adds to the HKD amounts as-is
	if got := TotalByType(txs, TypeIncome); !got.Equal(D(26100)) {
		t.Errorf("TotalByType(income) = %s, want 26100", got)
	}
	if got := TotalByType(txs, TypeExpense); !got.Equal(D(12000)) {
		t.Errorf("TotalByType(expense) = %s, want 12000", got)
	}
	if got := TotalByType(nil, TypeIncome); !got.IsZero() {
		t.Errorf("TotalByType(empty) = %s, want 0", got)
	}
}

func TestMonthlyTotal(t *testing.T) {
	txs := []Transaction{
		income(100, "salary", "2026-08-01"),
		income(200, "salary", "2026-08-31"),
		income(400, "salary", "2026-07-31"),
		income(800, "salary", "2026-09-01"),
	}
	// both ends of the month are inclusive
	if got := MonthlyTotal(txs, TypeIncome, now); !got.Equal(D(300)) {
		t.Errorf("MonthlyTotal(income, Aug) = %s, want 300", got)
	}
}

func TestFilterByPeriod(t *testing.T) {
	txs := []Transaction{
		income(1, "salary", "2025-12-31"),
		income(2, "salary", "2026-01-01"),
		income(4, "salary", "2026-08-01"),
		income(8, "salary", "2026-08-22"),
		income(16, "salary", "2026-08-28"),
	}

	sum := func(txs []Transaction) decimal.Decimal { return TotalByType(txs, TypeIncome) }

	tests := []struct {
		period Period
		want   float64
	}{
		{All, 31},
		{Yearly, 30},
		{Monthly, 28},
		{Weekly, 24}, // rolling window: Aug 21 through the future
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := sum(FilterByPeriod(txs, tt.period, now)); !got.Equal(D(tt.want)) {
				t.Errorf("FilterByPeriod(%v) sums to %s, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestMonthlyTrends(t *testing.T) {
	txs := []Transaction{
		income(25000, "salary", "2026-07-05"),
		expense(12000, "other", "2026-07-20"),
		income(25000, "salary", "2026-06-05"),
		expense(11000, "other", "2026-06-20"),
	}

	trends := MonthlyTrends(txs, 6, now)
	if len(trends) != 6 {
		t.Fatalf("len(trends) = %d, want 6", len(trends))
	}
	// oldest first, ending at the current month
	if trends[0].Month != "Mar 2026" {
		t.Errorf("first month = %q, want %q", trends[0].Month, "Mar 2026")
	}
	if trends[5].Month != "Aug 2026" {
		t.Errorf("last month = %q, want %q", trends[5].Month, "Aug 2026")
	}
	// empty months still get zero-valued points
	if !trends[0].Income.IsZero() || !trends[0].Expenses.IsZero() {
		t.Errorf("empty month has non-zero values: %+v", trends[0])
	}
	// savings is income minus expenses
	july := trends[4]
	if july.Month != "Jul 2026" {
		t.Fatalf("trends[4].Month = %q, want Jul 2026", july.Month)
	}
	if !july.Savings.Equal(D(13000)) {
		t.Errorf("july savings = %s, want 13000", july.Savings)
	}
}

func TestGroupByCategory(t *testing.T) {
	txs := []Transaction{
		expense(100, "food", "2026-08-01"),
		expense(200, "food", "2026-08-02"),
		expense(500, "shopping", "2026-08-03"),
		expense(300, "transportation", "2026-08-04"),
		income(9999, "salary", "2026-08-05"), // other types are ignored
	}

	got := GroupByCategory(txs, TypeExpense)
	want := []struct {
		category string
		amount   float64
		count    int
	}{
		{"shopping", 500, 1},
		{"food", 300, 2},
		{"transportation", 300, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Category != w.category || !got[i].Amount.Equal(D(w.amount)) || got[i].Count != w.count {
			t.Errorf("[%d] = %s %s x%d, want %s %v x%d", i,
				got[i].Category, got[i].Amount, got[i].Count, w.category, w.amount, w.count)
		}
	}
}

func TestGroupByCategoryStableTies(t *testing.T) {
	// food appears before transportation, amounts are equal: order is kept
	txs := []Transaction{
		expense(300, "food", "2026-08-01"),
		expense(300, "transportation", "2026-08-02"),
	}
	got := GroupByCategory(txs, TypeExpense)
	if got[0].Category != "food" || got[1].Category != "transportation" {
		t.Errorf("tie order = [%s %s], want [food transportation]", got[0].Category, got[1].Category)
	}
}

func TestWithShares(t *testing.T) {
	breakdown := GroupByCategory([]Transaction{
		expense(750, "food", "2026-08-01"),
		expense(250, "shopping", "2026-08-02"),
	}, TypeExpense)

	shared := WithShares(breakdown)
	if !shared[0].Share.Equal(75) {
		t.Errorf("food share = %s, want 75%%", shared[0].Share)
	}
	if !shared[1].Share.Equal(25) {
		t.Errorf("shopping share = %s, want 25%%", shared[1].Share)
	}

	// a zero total yields zero shares, not a division by zero
	zero := WithShares([]CategoryTotal{{Category: "food"}})
	if !zero[0].Share.Equal(0) {
		t.Errorf("zero total share = %s, want 0%%", zero[0].Share)
	}
}

func TestMonthlyTrendOf(t *testing.T) {
	tests := []struct {
		name     string
		txs      []Transaction
		txType   TransactionType
		want     Percent
		positive bool
	}{
		{
			name: "increase",
			txs: []Transaction{
				income(25000, "salary", "2026-08-05"),
				income(20000, "salary", "2026-07-05"),
			},
			txType: TypeIncome, want: 25, positive: true,
		},
		{
			name: "decrease reports magnitude",
			txs: []Transaction{
				expense(9000, "other", "2026-08-05"),
				expense(12000, "other", "2026-07-05"),
			},
			txType: TypeExpense, want: 25, positive: false,
		},
		{
			name:   "zero previous month is flat and positive",
			txs:    []Transaction{income(100, "salary", "2026-08-05")},
			txType: TypeIncome, want: 0, positive: true,
		},
		{
			name:   "both months zero",
			txs:    nil,
			txType: TypeIncome, want: 0, positive: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyTrendOf(tt.txs, tt.txType, now)
			if !got.Value.Equal(tt.want) || got.IsPositive != tt.positive {
				t.Errorf("MonthlyTrendOf() = %v, want {%v %v}", got, tt.want, tt.positive)
			}
		})
	}
}

func TestNetWorthTrend(t *testing.T) {
	tests := []struct {
		name     string
		txs      []Transaction
		want     Percent
		positive bool
	}{
		{
			name: "growth",
			txs: []Transaction{
				asset(1100, "2026-08-05"),
				asset(1000, "2026-07-05"),
			},
			want: 10, positive: true,
		},
		{
			name: "negative to less negative is a positive trend",
			// prev = -1000, current = -500: change/abs(prev) = +50%
			txs: []Transaction{
				liability(500, "2026-08-05"),
				liability(1000, "2026-07-05"),
			},
			want: 50, positive: true,
		},
		{
			name: "liabilities subtract",
			txs: []Transaction{
				asset(1000, "2026-08-05"),
				liability(200, "2026-08-06"),
				asset(1000, "2026-07-05"),
			},
			want: 20, positive: false,
		},
		{
			name: "zero previous month",
			txs:  []Transaction{asset(500, "2026-08-05")},
			want: 0, positive: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NetWorthTrend(tt.txs, now)
			if !got.Value.Equal(tt.want) || got.IsPositive != tt.positive {
				t.Errorf("NetWorthTrend() = %v, want {%v %v}", got, tt.want, tt.positive)
			}
		})
	}
}

func TestNetWorthFormulas(t *testing.T) {
	// the two net worth views disagree on purpose: NetWorth is a cash-flow
	// figure, BalanceNetWorth a balance-sheet one
	if got := NetWorth(D(25000), D(12000), D(5000)); !got.Equal(D(18000)) {
		t.Errorf("NetWorth = %s, want 18000", got)
	}
	txs := []Transaction{
		asset(30000, "2026-08-01"),
		liability(4000, "2026-08-02"),
	}
	if got := BalanceNetWorth(txs); !got.Equal(D(26000)) {
		t.Errorf("BalanceNetWorth = %s, want 26000", got)
	}
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		income(25000, "salary", "2026-08-05"),
		expense(12000, "other", "2026-08-10"),
		income(25000, "salary", "2026-07-05"),
		expense(11000, "other", "2026-07-10"),
		asset(30000, "2026-08-01"),
		liability(4000, "2026-08-02"),
		income(99999, "salary", "2025-01-01"), // outside the yearly filter
	}

	s := Summarize(txs, Yearly, now)
	if !s.TotalIncome.Equal(D(50000)) {
		t.Errorf("TotalIncome = %s, want 50000", s.TotalIncome)
	}
	if !s.TotalExpenses.Equal(D(23000)) {
		t.Errorf("TotalExpenses = %s, want 23000", s.TotalExpenses)
	}
	if !s.NetWorth.Equal(D(26000)) {
		t.Errorf("NetWorth = %s, want 26000", s.NetWorth)
	}
	// income flat month over month
	if !s.IncomeTrend.Value.Equal(0) || !s.IncomeTrend.IsPositive {
		t.Errorf("IncomeTrend = %v, want flat positive", s.IncomeTrend)
	}
	// expenses 11000 to 12000: +9.09%, and for spending up reads positive
	if !s.ExpenseTrend.Value.Equal(9.0909) || !s.ExpenseTrend.IsPositive {
		t.Errorf("ExpenseTrend = %v, want {9.09%% true}", s.ExpenseTrend)
	}
}

func TestAverageMetrics(t *testing.T) {
	txs := []Transaction{
		income(25000, "salary", "2026-08-05"),
		income(25000, "salary", "2026-07-05"),
		expense(10000, "other", "2026-08-10"),
	}
	a := AverageMetrics(txs, 2)
	if !a.MonthlyIncome.Equal(D(25000)) {
		t.Errorf("MonthlyIncome = %s, want 25000", a.MonthlyIncome)
	}
	if !a.MonthlyExpenses.Equal(D(5000)) {
		t.Errorf("MonthlyExpenses = %s, want 5000", a.MonthlyExpenses)
	}
	if !a.SavingsRate.Equal(80) {
		t.Errorf("SavingsRate = %s, want 80%%", a.SavingsRate)
	}

	// no income: zero savings rate, not a division by zero
	if a := AverageMetrics([]Transaction{expense(100, "other", "2026-08-10")}, 2); !a.SavingsRate.Equal(0) {
		t.Errorf("SavingsRate = %s, want 0%%", a.SavingsRate)
	}
}

func TestComparison(t *testing.T) {
	trends := MonthlyTrends([]Transaction{
		income(25000, "salary", "2026-08-05"),
		expense(12000, "other", "2026-08-10"),
		income(25000, "salary", "2026-07-05"),
		expense(11000, "other", "2026-07-10"),
	}, 6, now)

	rows := Comparison(trends)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[2].Measure != "Savings" || !rows[2].Current.Equal(D(13000)) || !rows[2].Previous.Equal(D(14000)) {
		t.Errorf("savings row = %+v, want current 13000 previous 14000", rows[2])
	}

	// short windows degrade to zero previous values
	short := Comparison(trends[5:])
	if !short[0].Previous.IsZero() {
		t.Errorf("previous = %s, want 0", short[0].Previous)
	}
}
