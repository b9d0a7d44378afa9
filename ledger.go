package banktracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TxType is the direction of a bank transaction.
type TxType int

const (
	Income TxType = iota
	Expense
)

func (t TxType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

func (t TxType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TxType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTxType(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Categories are the transaction categories the dashboard knows about.
var Categories = []string{"salary", "housing", "food", "transport", "utilities", "entertainment", "other"}

// IsCategory reports whether s is a known category.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// TimeRange selects the transactions shown in reports.
type TimeRange int

const (
	RangeAll TimeRange = iota
	RangeWeek
	RangeMonth
	RangeYear
)

// ParseTimeRange parses "week", "month", "year" or "all".
func ParseTimeRange(s string) (TimeRange, error) {
	switch s {
	case "all":
		return RangeAll, nil
	case "week":
		return RangeWeek, nil
	case "month":
		return RangeMonth, nil
	case "year":
		return RangeYear, nil
	default:
		return 0, fmt.Errorf("unknown time range: %q (want week, month, year or all)", s)
	}
}

func (r TimeRange) String() string {
	switch r {
	case RangeWeek:
		return "week"
	case RangeMonth:
		return "month"
	case RangeYear:
		return "year"
	default:
		return "all"
	}
}

// cutoff returns the inclusive lower bound of the range, or false for RangeAll.
func (r TimeRange) cutoff(now time.Time) (time.Time, bool) {
	switch r {
	case RangeWeek:
		return time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location()), true
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case RangeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// InputError rejects invalid user input before any state mutation.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Transaction is one manually entered bank movement. Amount is always
// positive; Type carries the direction.
type Transaction struct {
	ID          string    `json:"id"`
	Type        TxType    `json:"type"`
	Amount      Money     `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// CategoryTotal accumulates per-category movements.
type CategoryTotal struct {
	Income   Money `json:"income"`
	Expenses Money `json:"expenses"`
}

// Ledger is the list of bank transactions, kept in chronological order.
type Ledger struct {
	Transactions []Transaction `json:"transactions"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Transactions: make([]Transaction, 0)}
}

// Add validates and records a new transaction. Validation happens before any
// mutation: on error the ledger is untouched.
func (l *Ledger) Add(txType TxType, amount Money, description, category string, at time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, &InputError{Field: "amount", Reason: "must be a positive number"}
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, &InputError{Field: "description", Reason: "must not be empty"}
	}
	if !IsCategory(category) {
		return Transaction{}, &InputError{Field: "category", Reason: fmt.Sprintf("unknown category %q", category)}
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Category:    category,
		Date:        at,
	}
	l.Transactions = append(l.Transactions, tx)
	sort.SliceStable(l.Transactions, func(i, j int) bool {
		return l.Transactions[i].Date.Before(l.Transactions[j].Date)
	})
	return tx, nil
}

// Delete removes the transaction with the given id.
func (l *Ledger) Delete(id string) error {
	for i, tx := range l.Transactions {
		if tx.ID == id {
			l.Transactions = append(l.Transactions[:i], l.Transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown transaction %q", id)
}

// Clear removes all transactions.
func (l *Ledger) Clear() { l.Transactions = l.Transactions[:0] }

// Between returns the transactions within the time range, newest last.
func (l *Ledger) Between(r TimeRange, now time.Time) []Transaction {
	from, bounded := r.cutoff(now)
	if !bounded {
		return l.Transactions
	}
	var out []Transaction
	for _, tx := range l.Transactions {
		if !tx.Date.Before(from) {
			out = append(out, tx)
		}
	}
	return out
}

// Income is the sum of all income transactions.
func (l *Ledger) Income() Money { return l.total(Income) }

// Expenses is the sum of all expense transactions.
func (l *Ledger) Expenses() Money { return l.total(Expense) }

// Balance is income minus expenses.
func (l *Ledger) Balance() Money { return l.Income().Sub(l.Expenses()) }

func (l *Ledger) total(txType TxType) Money {
	var sum Money
	for _, tx := range l.Transactions {
		if tx.Type == txType {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// CategoryTotals sums income and expenses per category. Categories without
// transactions are absent from the result.
func (l *Ledger) CategoryTotals() map[string]CategoryTotal {
	totals := make(map[string]CategoryTotal)
	for _, tx := range l.Transactions {
		t := totals[tx.Category]
		switch tx.Type {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
		totals[tx.Category] = t
	}
	return totals
}
