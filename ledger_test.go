package banktracker

import (
	"errors"
	"testing"
	"time"
)

func TestLedgerAddValidation(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		amount      Money
		description string
		category    string
		field       string
	}{
		{"negative amount", M(-10, "USD"), "refund", "other", "amount"},
		{"zero amount", M(0, "USD"), "nothing", "other", "amount"},
		{"blank description", M(10, "USD"), "   ", "other", "description"},
		{"unknown category", M(10, "USD"), "coffee", "caffeine", "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger()
			_, err := l.Add(Expense, tt.amount, tt.description, tt.category, now)
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Add returned %v, want an InputError", err)
			}
			if inputErr.Field != tt.field {
				t.Errorf("rejected field is %q, want %q", inputErr.Field, tt.field)
			}
			if len(l.Transactions) != 0 {
				t.Error("a rejected transaction must not touch the ledger")
			}
		})
	}
}

func TestLedgerTotals(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	l := NewLedger()
	mustAdd := func(txType TxType, amount float64, desc, cat string, at time.Time) {
		t.Helper()
		if _, err := l.Add(txType, M(amount, "USD"), desc, cat, at); err != nil {
			t.Fatalf("Add(%s %v): %v", txType, amount, err)
		}
	}
	mustAdd(Income, 2500, "salary", "salary", now.AddDate(0, 0, -1))
	mustAdd(Expense, 800, "rent", "housing", now.AddDate(0, 0, -2))
	mustAdd(Expense, 120.50, "groceries", "food", now)

	if got := l.Income(); !got.Equal(M(2500, "USD")) {
		t.Errorf("income is %s, want $2,500.00", got)
	}
	if got := l.Expenses(); !got.Equal(M(920.50, "USD")) {
		t.Errorf("expenses are %s, want $920.50", got)
	}
	if got := l.Balance(); !got.Equal(M(1579.50, "USD")) {
		t.Errorf("balance is %s, want $1,579.50", got)
	}

	totals := l.CategoryTotals()
	if got := totals["housing"].Expenses; !got.Equal(M(800, "USD")) {
		t.Errorf("housing expenses are %s, want $800.00", got)
	}
	if got := totals["salary"].Income; !got.Equal(M(2500, "USD")) {
		t.Errorf("salary income is %s, want $2,500.00", got)
	}
	if _, ok := totals["transport"]; ok {
		t.Error("categories without transactions must be absent from the totals")
	}
}

func TestLedgerBetween(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	l := NewLedger()
	dates := []time.Time{
		now.AddDate(-1, 0, 0),  // last year
		now.AddDate(0, -2, 0),  // two months ago, same year
		now.AddDate(0, 0, -10), // this month
		now.AddDate(0, 0, -3),  // this week
	}
	for _, d := range dates {
		if _, err := l.Add(Expense, M(5, "USD"), "coffee", "food", d); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	tests := []struct {
		r    TimeRange
		want int
	}{
		{RangeAll, 4},
		{RangeYear, 3},
		{RangeMonth, 2},
		{RangeWeek, 1},
	}
	for _, tt := range tests {
		if got := len(l.Between(tt.r, now)); got != tt.want {
			t.Errorf("Between(%s) returned %d transactions, want %d", tt.r, got, tt.want)
		}
	}
}

func TestLedgerChronologicalOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	l := NewLedger()
	// inserted out of order on purpose
	l.Add(Expense, M(1, "USD"), "second", "other", now)
	l.Add(Expense, M(1, "USD"), "first", "other", now.AddDate(0, 0, -5))

	if l.Transactions[0].Description != "first" {
		t.Errorf("transactions are not in chronological order: %q first", l.Transactions[0].Description)
	}
}

func TestLedgerDelete(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	l := NewLedger()
	tx, err := l.Add(Expense, M(5, "USD"), "coffee", "food", now)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := l.Delete("nope"); err == nil {
		t.Error("deleting an unknown id must fail")
	}
	if err := l.Delete(tx.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(l.Transactions) != 0 {
		t.Errorf("ledger still has %d transactions after delete", len(l.Transactions))
	}
}

func TestParseTimeRange(t *testing.T) {
	for _, s := range []string{"week", "month", "year", "all"} {
		r, err := ParseTimeRange(s)
		if err != nil {
			t.Errorf("ParseTimeRange(%q): %v", s, err)
		}
		if r.String() != s {
			t.Errorf("ParseTimeRange(%q).String() = %q", s, r.String())
		}
	}
	if _, err := ParseTimeRange("decade"); err == nil {
		t.Error("ParseTimeRange must reject unknown ranges")
	}
}
