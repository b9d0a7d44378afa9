// Package cryptocompare implements a supplemental quote source: one GET
// returning a currency-code → price object for a single fixed symbol.
package cryptocompare

import (
	"context"
	"fmt"
	"net/http"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
)

const DefaultBaseURL = "https://min-api.cryptocompare.com/data"

// Client quotes one fixed symbol, best effort. A failure is absorbed into
// the source status by the aggregator, never surfaced further.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Symbol is the fixed symbol this source quotes. Defaults to BTC.
	Symbol string
}

func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: new(http.Client), Symbol: "BTC"}
}

func (c *Client) Name() string { return "cryptoCompare" }

// Fetch returns a quote set matching only the client's fixed symbol.
func (c *Client) Fetch(ctx context.Context) (banktracker.QuoteSet, error) {
	addr := fmt.Sprintf("%s/price?fsym=%s&tsyms=USD,EUR", c.BaseURL, c.Symbol)

	// the response maps currency codes to prices: {"USD": 50000.1, "EUR": ...}
	content := make(map[string]float64)
	if err := banktracker.JSONGet(ctx, c.HTTP, addr, nil, &content); err != nil {
		return nil, fmt.Errorf("cryptocompare price: %w", err)
	}
	usd, ok := content["USD"]
	if !ok {
		return nil, fmt.Errorf("cryptocompare price: no USD quote for %s", c.Symbol)
	}
	return banktracker.SingleQuote{Symbol: c.Symbol, Price: banktracker.P(usd)}, nil
}
