package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/CsikSzabi04/Bank-Tracker/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	timeRange string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "prints income, expenses, balance and category totals" }
func (*summaryCmd) Usage() string {
	return `bt summary [-r <range>]

Prints the bank summary: total income, total expenses, balance and the
per-category breakdown, plus the transactions of the given time range.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeRange, "r", "all", "Time range: week, month, year or all.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	ledger, err := loadLedger(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load bank ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := banktracker.ParseTimeRange(c.timeRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.BankMarkdown(ledger, r, time.Now()))
	return subcommands.ExitSuccess
}
