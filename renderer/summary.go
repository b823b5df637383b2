package renderer

import (
	"bytes"
	"fmt"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the dashboard summary cards as a markdown table.
// Amounts are shown in the display currency convention; the totals behind
// them are face-value sums.
func SummaryMarkdown(s *dashboard.DashboardSummary, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary (%s) on %s", s.Period, s.Date))

	doc.Table(md.TableSet{
		Header: []string{"Card", "Total", "Monthly Trend"},
		Rows: [][]string{
			{"Income", dashboard.FormatMoney(s.TotalIncome, cur), s.IncomeTrend.String()},
			{"Expenses", dashboard.FormatMoney(s.TotalExpenses, cur), s.ExpenseTrend.String()},
			{"Assets", dashboard.FormatMoney(s.TotalAssets, cur), s.AssetTrend.String()},
			{"Liabilities", dashboard.FormatMoney(s.TotalLiabilities, cur), "-"},
			{"Net Worth", dashboard.FormatMoney(s.NetWorth, cur), s.NetWorthTrend.String()},
		},
	})

	return doc.String()
}
