package cmd

import (
	"context"
	"flag"
	"strings"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	amount      float64
	description string
	category    string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "records an expense transaction" }
func (*expenseCmd) Usage() string {
	return `bt expense -a <amount> -d <description> [-c <category>]

Records an expense transaction in the bank ledger.

Usage Examples:
$ bt expense -a 42.50 -d "Groceries" -c food
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Amount in USD, must be positive.")
	f.StringVar(&c.description, "d", "", "Description of the transaction.")
	f.StringVar(&c.category, "c", "other", "Category: "+strings.Join(banktracker.Categories, ", ")+".")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(banktracker.Expense, c.amount, c.description, c.category)
}
