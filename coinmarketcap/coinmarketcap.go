// Package coinmarketcap implements the key-gated supplemental quote source.
// It requires an API key sent as a request header; a missing key degrades to
// an ordinary source error, never a fatal one.
package coinmarketcap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
)

const DefaultBaseURL = "https://pro-api.coinmarketcap.com/v1"

// keyHeader carries the API key, per the provider's auth scheme.
const keyHeader = "X-CMC_PRO_API_KEY"

// Client fetches the latest listings, keyed by symbol.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	APIKey  string
}

func New(apiKey string) *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: new(http.Client), APIKey: apiKey}
}

func (c *Client) Name() string { return "coinMarketCap" }

// Fetch returns a symbol-keyed quote table extracted from the listings
// payload.
func (c *Client) Fetch(ctx context.Context) (banktracker.QuoteSet, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("coinmarketcap: no API key configured")
	}
	addr := c.BaseURL + "/cryptocurrency/listings/latest"

	/*
		{
		  "data": [
		    {
		      "symbol": "BTC",
		      "quote": { "USD": { "price": 50123.4, ... } }
		    },
	*/
	var jobj any
	headers := map[string]string{keyHeader: c.APIKey}
	if err := banktracker.JSONGet(ctx, c.HTTP, addr, headers, &jobj); err != nil {
		return nil, fmt.Errorf("coinmarketcap listings: %w", err)
	}

	jdata, err := jsonpath.Get("$.data", jobj)
	if err != nil {
		return nil, fmt.Errorf("coinmarketcap listings: no data array: %w", err)
	}
	jlist, ok := jdata.([]any)
	if !ok {
		return nil, fmt.Errorf("coinmarketcap listings: data is %T, not an array", jdata)
	}

	quotes := make(banktracker.SymbolQuotes, len(jlist))
	for _, item := range jlist {
		jsym, err := jsonpath.Get("$.symbol", item)
		if err != nil {
			continue
		}
		symbol, ok := jsym.(string)
		if !ok || symbol == "" {
			continue
		}
		// listings without a USD quote are simply skipped, never zeroed.
		jprice, err := jsonpath.Get("$.quote.USD.price", item)
		if err != nil {
			continue
		}
		price, ok := jprice.(float64)
		if !ok {
			continue
		}
		quotes[strings.ToUpper(symbol)] = banktracker.P(price)
	}
	return quotes, nil
}
