// Package binance implements a supplemental quote source: one GET returning
// a single ticker object with the price as a stringified number.
package binance

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.binance.com/api/v3"

// Client quotes one fixed trading pair, best effort.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Pair is the exchange pair to query, Symbol the asset symbol it quotes.
	// Defaults to BTCUSDT / BTC.
	Pair   string
	Symbol string
}

func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: new(http.Client), Pair: "BTCUSDT", Symbol: "BTC"}
}

func (c *Client) Name() string { return "binance" }

// Fetch returns a quote set matching only the client's fixed symbol.
func (c *Client) Fetch(ctx context.Context) (banktracker.QuoteSet, error) {
	addr := fmt.Sprintf("%s/ticker/price?symbol=%s", c.BaseURL, c.Pair)

	// the response is {"symbol": "BTCUSDT", "price": "50123.40000000"}
	var content struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := banktracker.JSONGet(ctx, c.HTTP, addr, nil, &content); err != nil {
		return nil, fmt.Errorf("binance ticker: %w", err)
	}

	// the price comes as a string; be lenient about stray spaces.
	val, err := decimal.NewFromString(strings.TrimSpace(content.Price))
	if err != nil {
		return nil, fmt.Errorf("binance ticker: invalid price %q for %s: %w", content.Price, c.Pair, err)
	}
	return banktracker.SingleQuote{Symbol: c.Symbol, Price: banktracker.P(val)}, nil
}
