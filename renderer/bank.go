package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	md "github.com/nao1215/markdown"
)

// BankMarkdown renders the bank side of the dashboard: balance, category
// totals and the transactions within the selected time range.
func BankMarkdown(l *banktracker.Ledger, r banktracker.TimeRange, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bank Tracker")
	summary := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Balance", l.Balance().String()},
			{"Income", l.Income().String()},
			{"Expenses", l.Expenses().String()},
		},
	}
	doc.Table(summary)

	totals := l.CategoryTotals()
	if len(totals) > 0 {
		doc.H2("By category")
		categories := make([]string, 0, len(totals))
		for c := range totals {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Income", "Expenses"},
			Rows:      [][]string{},
		}
		for _, c := range categories {
			t := totals[c]
			table.Rows = append(table.Rows, []string{c, t.Income.String(), t.Expenses.String()})
		}
		doc.Table(table)
	}

	doc.H2(fmt.Sprintf("Transactions (%s)", r))
	transactions := l.Between(r, now)
	if len(transactions) == 0 {
		doc.PlainText("No transactions in this range.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Type", "Category", "Description", "Amount", "ID"},
		Rows:   [][]string{},
	}
	for _, tx := range transactions {
		amount := tx.Amount.String()
		if tx.Type == banktracker.Expense {
			amount = "-" + amount
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.Format("2006-01-02 15:04"),
			tx.Type.String(),
			tx.Category,
			tx.Description,
			amount,
			tx.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}
