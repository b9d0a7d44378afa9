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

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetches fresh market data from all sources" }
func (*refreshCmd) Usage() string {
	return `bt refresh

Fetches the asset list from coinGecko and supplemental quotes from
cryptoCompare, binance and coinMarketCap (when an API key is set), then
saves and prints the merged result.

A coinGecko failure keeps the previously saved data on screen.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}

	refreshErr := agg.Refresh(ctx)

	view := agg.View()
	if err := store.Set(banktracker.StoreMarket, view); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save market data: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AssetsMarkdown(view))

	if refreshErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", refreshErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
