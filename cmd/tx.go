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

type txCmd struct {
	timeRange string
	deleteID  string
	clear     bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "lists or removes bank transactions" }
func (*txCmd) Usage() string {
	return `bt tx [-r <range>] [-id <uuid>] [-clear]

Lists the bank transactions in the given time range (week, month, year, all).
With -id it removes that single transaction; with -clear it wipes the whole
ledger.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeRange, "r", "all", "Time range: week, month, year or all.")
	f.StringVar(&c.deleteID, "id", "", "Transaction id to delete.")
	f.BoolVar(&c.clear, "clear", false, "Remove all transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	if c.clear {
		if err := store.Remove(banktracker.StoreBank); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not clear bank ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Bank ledger cleared.")
		return subcommands.ExitSuccess
	}

	ledger, err := loadLedger(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load bank ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.deleteID != "" {
		if err := ledger.Delete(c.deleteID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := store.Set(banktracker.StoreBank, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save bank ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", c.deleteID)
		return subcommands.ExitSuccess
	}

	r, err := banktracker.ParseTimeRange(c.timeRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.BankMarkdown(ledger, r, time.Now()))
	return subcommands.ExitSuccess
}
