package renderer

import (
	"bytes"
	"fmt"
	"strings"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	md "github.com/nao1215/markdown"
)

// categoryLabels maps category codes to their display labels. Unknown codes
// (freeform labels included) display as-is.
var categoryLabels = map[string]string{
	"food":              "Food & Dining",
	"transportation":    "Transportation",
	"entertainment":     "Entertainment",
	"healthcare":        "Healthcare",
	"education":         "Education",
	"shopping":          "Shopping",
	"utilities":         "Utilities",
	"other":             "Other",
	"salary":            "Salary",
	"freelance":         "Freelance",
	"investment_return": "Investment Return",
	"business":          "Business",
}

// CategoryLabel returns the display label for a category code.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// BreakdownMarkdown renders a category breakdown, largest first, with each
// category's share of the total.
func BreakdownMarkdown(t dashboard.TransactionType, breakdown []dashboard.CategoryTotal, cur dashboard.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s by Category", title(string(t))))

	if len(breakdown) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(breakdown))
	for _, ct := range breakdown {
		rows = append(rows, []string{
			CategoryLabel(ct.Category),
			dashboard.FormatMoney(ct.Amount, cur),
			fmt.Sprintf("%d", ct.Count),
			ct.Share.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Amount", "Count", "Share"},
		Rows:   rows,
	})

	return doc.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
