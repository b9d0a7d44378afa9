package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	amount      float64
	description string
	category    string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "records an income transaction" }
func (*incomeCmd) Usage() string {
	return `bt income -a <amount> -d <description> [-c <category>]

Records an income transaction in the bank ledger.

Usage Examples:
$ bt income -a 2500 -d "August salary" -c salary
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount in USD, must be positive.")
	f.StringVar(&c.description, "d", "", "Description of the transaction.")
	f.StringVar(&c.category, "c", "other", "Category: "+strings.Join(banktracker.Categories, ", ")+".")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(banktracker.Income, c.amount, c.description, c.category)
}

// recordTransaction is the shared tail of the income and expense commands.
func recordTransaction(txType banktracker.TxType, amount float64, description, category string) subcommands.ExitStatus {
	store := openStore()
	ledger, err := loadLedger(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load bank ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Add(txType, banktracker.M(amount, "USD"), description, category, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := store.Set(banktracker.StoreBank, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save bank ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s (%s) %s\n", tx.Type, tx.Amount, tx.Category, tx.ID)
	return subcommands.ExitSuccess
}
