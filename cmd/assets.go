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

type assetsCmd struct {
	query string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "lists the last fetched assets" }
func (*assetsCmd) Usage() string {
	return `bt assets [-q <query>]

Prints the asset table from the last refresh, without any network call.
The -q flag filters by name or symbol (case-insensitive substring) and is
remembered for the next listing; pass -q "" to clear it.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "\x00", "Filter assets by name or symbol.")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}

	// "\x00" is the unset sentinel: a plain `bt assets` keeps the saved query.
	if c.query != "\x00" {
		agg.SetQuery(c.query)
		if err := store.Set(banktracker.StoreMarket, agg.View()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save market data: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.AssetsMarkdown(agg.View()))
	return subcommands.ExitSuccess
}
