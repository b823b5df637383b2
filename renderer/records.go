package renderer

import (
	"bytes"
	"fmt"
	"io"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction listing, newest first.
func TransactionsMarkdown(txs []dashboard.Transaction) string {
	var b bytes.Buffer
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(txs) == 0 {
			fmt.Fprintln(w, "No transactions.")
			return true
		}
		doc := md.NewMarkdown(w)
		rows := make([][]string, 0, len(txs))
		for i := len(txs) - 1; i >= 0; i-- {
			tx := txs[i]
			rows = append(rows, []string{
				tx.Date.String(),
				string(tx.Type),
				dashboard.FormatMoney(tx.Amount, tx.Currency),
				CategoryLabel(tx.Category.String()),
				tx.Description,
				shortID(tx.ID),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Type", "Amount", "Category", "Description", "ID"},
			Rows:   rows,
		})
		fmt.Fprint(w, doc.String())
		return true
	})
	return b.String()
}

// InvestmentsMarkdown renders the investment holdings with derived gains.
func InvestmentsMarkdown(invs []dashboard.Investment) string {
	if len(invs) == 0 {
		return "No investments.\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	rows := make([][]string, 0, len(invs))
	for _, inv := range invs {
		rows = append(rows, []string{
			inv.Name,
			string(inv.Type),
			inv.Quantity.String(),
			dashboard.FormatMoney(inv.CurrentValue(), inv.Currency),
			dashboard.FormatMoney(inv.GainLoss(), inv.Currency),
			inv.GainLossPercent().SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Quantity", "Value", "Gain/Loss", "Return"},
		Rows:   rows,
	})
	return doc.String()
}

// AccountsMarkdown renders the account balances.
func AccountsMarkdown(accounts []dashboard.Account) string {
	if len(accounts) == 0 {
		return "No accounts.\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			dashboard.FormatMoney(a.Balance, a.Currency),
			shortID(a.ID),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Account", "Type", "Balance", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// shortID keeps listings compact; imported data may carry ids of any length.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ConversionMarkdown renders the result of a currency conversion.
func ConversionMarkdown(c dashboard.Conversion) string {
	return fmt.Sprintf("%s = %s (rate %v)\n",
		dashboard.FormatMoney(c.Amount, c.From),
		dashboard.FormatMoney(c.ConvertedAmount, c.To),
		c.Rate)
}

// RatesMarkdown renders the exchange rate table.
func RatesMarkdown(rates []dashboard.Rate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Exchange Rates")
	rows := make([][]string, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, []string{
			string(r.From),
			string(r.To),
			fmt.Sprintf("%v", r.Rate),
			r.Timestamp.Format("2006-01-02 15:04"),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"From", "To", "Rate", "As Of"},
		Rows:   rows,
	})

	return doc.String()
}
