package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/CsikSzabi04/Bank-Tracker/agent"
	"github.com/CsikSzabi04/Bank-Tracker/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }
func (*assistCmd) Usage() string {
	return `assist [initial prompt]

Start an interactive session with the AI assistant. The assistant knows the
last refreshed market data, your portfolio and your bank ledger.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	store := openStore()
	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}
	view := agg.View()

	p, err := loadPortfolio(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := loadLedger(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load bank ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	marketReport := renderer.AssetsMarkdown(view) + "\n" + renderer.PortfolioMarkdown(p, view.Find)
	bankReport := renderer.BankMarkdown(ledger, banktracker.RangeAll, time.Now())

	analyst := agent.NewAnalyst(marketReport)
	accountant := agent.NewAccountant(bankReport)
	a := agent.New(os.Stdout, os.Stdin, analyst, accountant)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
