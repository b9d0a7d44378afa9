package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/google/subcommands"
)

type addCmd struct {
	id       string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "adds a holding to the portfolio" }
func (*addCmd) Usage() string {
	return `bt add -id <asset-id> -q <quantity>

Records a new holding at the asset's current price. The acquisition price is
frozen at this moment and never updated by later refreshes.

Usage Examples:
$ bt add -id bitcoin -q 0.5
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset id, as listed by 'bt assets'.")
	f.StringVar(&c.quantity, "q", "", "Quantity to hold.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	store := openStore()
	agg := newAggregator()
	if err := loadView(store, agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load saved market data: %v\n", err)
		return subcommands.ExitFailure
	}

	asset, ok := agg.View().Find(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown asset %q. Run 'bt refresh' first.\n", c.id)
		return subcommands.ExitFailure
	}

	p, err := loadPortfolio(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	h := p.Add(asset, c.quantity, time.Now())

	if err := store.Set(banktracker.StorePortfolio, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %s at %s\n", h.Quantity, h.Symbol, h.AcquisitionPrice)
	return subcommands.ExitSuccess
}
