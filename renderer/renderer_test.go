package renderer

import (
	"strings"
	"testing"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSummaryMarkdown(t *testing.T) {
	s := &dashboard.DashboardSummary{
		Period:        dashboard.Monthly,
		Date:          dashboard.MustParseDate("2026-08-28"),
		TotalIncome:   d(25000),
		TotalExpenses: d(12000),
		NetWorth:      d(26000),
		IncomeTrend:   dashboard.Trend{Value: 0, IsPositive: true},
		ExpenseTrend:  dashboard.Trend{Value: 9.09, IsPositive: true},
	}
	out := SummaryMarkdown(s, dashboard.HKD)

	for _, want := range []string{"Summary (monthly) on 2026-08-28", "Income", "HK$25,000.00", "Net Worth", "+9.09%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestTrendsMarkdown(t *testing.T) {
	trends := []dashboard.MonthlyTrend{
		{Month: "Jul 2026", Income: d(25000), Expenses: d(11000), Savings: d(14000)},
		{Month: "Aug 2026", Income: d(25000), Expenses: d(12000), Savings: d(13000)},
	}
	avg := dashboard.Averages{MonthlyIncome: d(25000), MonthlyExpenses: d(11500), MonthlySavings: d(13500), SavingsRate: 54}
	out := TrendsMarkdown(trends, avg, dashboard.Comparison(trends), dashboard.HKD)

	for _, want := range []string{"Jul 2026", "Aug 2026", "Savings Rate", "54.00%", "Current vs Previous Month", "HK$13,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("trends missing %q:\n%s", want, out)
		}
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	breakdown := []dashboard.CategoryTotal{
		{Category: "food", Amount: d(750), Count: 3, Share: 75},
		{Category: "shopping", Amount: d(250), Count: 1, Share: 25},
	}
	out := BreakdownMarkdown(dashboard.TypeExpense, breakdown, dashboard.HKD)

	if !strings.Contains(out, "Expense by Category") {
		t.Errorf("missing title:\n%s", out)
	}
	// display labels, not raw codes
	if !strings.Contains(out, "Food & Dining") {
		t.Errorf("missing category label:\n%s", out)
	}
	// largest first
	if strings.Index(out, "Food & Dining") > strings.Index(out, "Shopping") {
		t.Errorf("breakdown not sorted by amount:\n%s", out)
	}

	if out := BreakdownMarkdown(dashboard.TypeExpense, nil, dashboard.HKD); !strings.Contains(out, "No transactions") {
		t.Errorf("empty breakdown = %q", out)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("investment_return"); got != "Investment Return" {
		t.Errorf("CategoryLabel(investment_return) = %q", got)
	}
	if got := CategoryLabel("Initial Balance"); got != "Initial Balance" {
		t.Errorf("unknown label changed: %q", got)
	}
}
