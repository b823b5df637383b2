package renderer

import (
	"bytes"
	"fmt"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	md "github.com/nao1215/markdown"
)

// TrendsMarkdown renders the monthly trend table with the analytics key
// metrics and the current-versus-previous-month comparison.
func TrendsMarkdown(trends []dashboard.MonthlyTrend, avg dashboard.Averages, comparison []dashboard.ComparisonRow, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Trends (last %d months)", len(trends)))

	rows := make([][]string, 0, len(trends))
	for _, tr := range trends {
		rows = append(rows, []string{
			tr.Month,
			dashboard.FormatMoney(tr.Income, cur),
			dashboard.FormatMoney(tr.Expenses, cur),
			dashboard.FormatMoney(tr.Savings, cur),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Income", "Expenses", "Savings"},
		Rows:   rows,
	})

	doc.H2("Key Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Average Monthly Income", dashboard.FormatMoney(avg.MonthlyIncome, cur)},
			{"Average Monthly Expenses", dashboard.FormatMoney(avg.MonthlyExpenses, cur)},
			{"Average Monthly Savings", dashboard.FormatMoney(avg.MonthlySavings, cur)},
			{"Savings Rate", avg.SavingsRate.String()},
		},
	})

	doc.H2("Current vs Previous Month")
	crows := make([][]string, 0, len(comparison))
	for _, row := range comparison {
		crows = append(crows, []string{
			row.Measure,
			dashboard.FormatMoney(row.Current, cur),
			dashboard.FormatMoney(row.Previous, cur),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Measure", "Current", "Previous"},
		Rows:   crows,
	})

	return doc.String()
}
