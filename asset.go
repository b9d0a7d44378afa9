// Package banktracker implements a personal finance dashboard: a read-only
// aggregator of cryptocurrency prices pulled from multiple external sources,
// a portfolio of recorded positions valued against live prices, and a manual
// bank transaction ledger.
package banktracker

import (
	"strings"

	"github.com/CsikSzabi04/Bank-Tracker/date"
)

// HistoryDays is the fixed span of the per-asset daily price history.
const HistoryDays = 7

// Asset is one tradable instrument as currently known from the price sources.
//
// ID is the primary source identifier and uniquely identifies an asset.
// Symbol is upper-cased but not guaranteed unique across sources.
type Asset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	// Price is the current primary-source USD price. It is unset when the
	// primary source reported no price for this asset.
	Price Price `json:"price"`

	Change24h         *Percent `json:"change24h,omitempty"`
	MarketCap         *float64 `json:"marketCap,omitempty"`
	Volume            *float64 `json:"volume,omitempty"`
	CirculatingSupply *float64 `json:"circulatingSupply,omitempty"`

	// History holds exactly HistoryDays daily points, oldest first. It is
	// regenerated on every refresh, never extended incrementally.
	History date.History[float64] `json:"history"`

	// Quotes maps a supplemental source name to that source's USD price for
	// this symbol. A source that failed or had no match is simply absent.
	Quotes map[string]Price `json:"quotes,omitempty"`
}

// Matches reports whether the asset matches a search query by
// case-insensitive substring on name or symbol. An empty query matches all.
func (a *Asset) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Symbol), q)
}

// historyFromSparkline reduces a sparkline of arbitrary resolution to
// HistoryDays daily points ending today. The sparkline is oldest first; the
// newest point always survives, the rest are sampled evenly.
func historyFromSparkline(prices []float64, today date.Date) date.History[float64] {
	var h date.History[float64]
	n := len(prices)
	if n == 0 {
		return h
	}
	for i := 0; i < HistoryDays; i++ {
		// Sample so that day offset HistoryDays-1 lands on the last point.
		j := (i + 1) * n / HistoryDays
		if j > 0 {
			j--
		}
		h.Append(today.Add(i-HistoryDays+1), prices[j])
	}
	return h
}
