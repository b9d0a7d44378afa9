package banktracker

import (
	"context"
	"strings"
)

// Lister is the primary market-listing source. Its failure fails the whole
// aggregation cycle.
type Lister interface {
	// Name identifies the source in status reports.
	Name() string
	// Fetch returns the ranked market listing. It never retries; a failed
	// fetch returns an error, it does not panic past this boundary.
	Fetch(ctx context.Context) ([]Listing, error)
}

// Listing is one raw record from the primary source. Optional fields are nil
// when the source did not report them.
type Listing struct {
	ID     string
	Name   string
	Symbol string

	Price             *float64
	Change24h         *float64
	MarketCap         *float64
	Volume            *float64
	CirculatingSupply *float64

	// Sparkline is the raw 7-day price series, oldest first, at whatever
	// resolution the source provides.
	Sparkline []float64
}

// Quoter is a best-effort supplemental price source. Its failure is recorded
// as a status but never aborts the cycle.
type Quoter interface {
	Name() string
	Fetch(ctx context.Context) (QuoteSet, error)
}

// QuoteSet is the capability a supplemental source offers after one fetch:
// look up its price for a symbol. The match is case-insensitive and exact,
// and may legitimately fail for most symbols.
type QuoteSet interface {
	TryMatch(symbol string) (Price, bool)
}

// SymbolQuotes is a ready-made QuoteSet over a symbol-keyed table.
type SymbolQuotes map[string]Price

func (q SymbolQuotes) TryMatch(symbol string) (Price, bool) {
	p, ok := q[strings.ToUpper(symbol)]
	return p, ok
}

// SingleQuote is a ready-made QuoteSet for sources that return one quote for
// one fixed symbol.
type SingleQuote struct {
	Symbol string
	Price  Price
}

func (q SingleQuote) TryMatch(symbol string) (Price, bool) {
	if strings.EqualFold(q.Symbol, symbol) {
		return q.Price, true
	}
	return Price{}, false
}
