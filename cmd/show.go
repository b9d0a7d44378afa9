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

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "shows the detail view of one asset" }
func (*showCmd) Usage() string {
	return `bt show [<asset-id>]

Prints the detail view of an asset: price by source, market figures and the
7-day history. With an asset id the selection moves to that asset and is
remembered; without one the currently selected asset is shown.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		if err := agg.Select(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := store.Set(banktracker.StoreMarket, agg.View()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save market data: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	asset := agg.View().Selected()
	if asset == nil {
		fmt.Fprintln(os.Stderr, "No asset selected. Run 'bt refresh' first, or pass an asset id.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AssetMarkdown(asset))
	return subcommands.ExitSuccess
}
