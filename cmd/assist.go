package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	dashboard "github.com/AllenCyhCHAN/financial-dashboard"
	"github.com/AllenCyhCHAN/financial-dashboard/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	months int
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short one-line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "ask the AI assistant about your finances" }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `fd assist [question...]

  Asks the AI assistant a question about your finances. The assistant sees
  the summary, trend and breakdown reports, nothing else. Without a
  question, it gives a general review.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 6, "Number of months of trends the assistant sees.")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Give me a short review of my financial situation."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening store:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a personal finance assistant. The user's dashboard reports
		are given below in markdown. Answer the user's question from those
		reports only, in a few short paragraphs of plain markdown. Amounts
		you quote must come from the reports.
	`}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	txs := store.Transactions()
	now := dashboard.Today()
	summary := dashboard.Summarize(txs, dashboard.Monthly, now)
	trends := dashboard.MonthlyTrends(txs, c.months, now)
	cur := DisplayCurrency()

	var prompt strings.Builder
	prompt.WriteString(renderer.SummaryMarkdown(&summary, cur))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.TrendsMarkdown(trends, dashboard.AverageMetrics(txs, c.months), dashboard.Comparison(trends), cur))
	prompt.WriteString("\n")
	prompt.WriteString(renderer.BreakdownMarkdown(dashboard.TypeExpense, dashboard.WithShares(dashboard.GroupByCategory(txs, dashboard.TypeExpense)), cur))
	prompt.WriteString("\nQuestion: ")
	prompt.WriteString(question)

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt.String()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		fmt.Fprintln(os.Stderr, "Assistant gave no answer.")
		return subcommands.ExitFailure
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			printMarkdown(part.Text)
		}
	}

	return subcommands.ExitSuccess
}
