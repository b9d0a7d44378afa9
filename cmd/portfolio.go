package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/CsikSzabi04/Bank-Tracker/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct {
	clear bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "values the portfolio against the last refresh" }
func (*portfolioCmd) Usage() string {
	return `bt portfolio [-clear]

Prints each holding with its cost basis, current value and profit/loss
computed against the last refreshed prices. Figures that cannot be computed
are shown as n/a.

The -clear flag removes every holding.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Remove all holdings.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	if c.clear {
		if err := store.Remove(banktracker.StorePortfolio); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not clear portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Portfolio cleared.")
		return subcommands.ExitSuccess
	}

	p, err := loadPortfolio(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}
	view := agg.View()

	printMarkdown(renderer.PortfolioMarkdown(p, view.Find))
	return subcommands.ExitSuccess
}
