// Package coingecko implements the primary market-listing source: one GET
// returning the top assets ranked by market cap, with 24h change and a 7-day
// sparkline.
package coingecko

import (
	"context"
	"fmt"
	"net/http"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
)

// DefaultBaseURL is the public CoinGecko v3 API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

const markets = "/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=100&page=1&sparkline=true&price_change_percentage=24h"

// Client fetches the ranked market listing. Its failure fails the whole
// aggregation cycle, so it performs no internal retries and reports plain
// errors.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, HTTP: new(http.Client)}
}

func (c *Client) Name() string { return "coinGecko" }

// market is the raw CoinGecko record. Numeric fields are nullable in the
// API, so they stay pointers.
type market struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	MarketCap                *float64 `json:"market_cap"`
	TotalVolume              *float64 `json:"total_volume"`
	CirculatingSupply        *float64 `json:"circulating_supply"`
	Sparkline                struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// Fetch returns the current market listing, up to 100 assets.
func (c *Client) Fetch(ctx context.Context) ([]banktracker.Listing, error) {
	content := make([]market, 0, 100)
	if err := banktracker.JSONGet(ctx, c.HTTP, c.BaseURL+markets, nil, &content); err != nil {
		return nil, fmt.Errorf("coingecko markets: %w", err)
	}

	listings := make([]banktracker.Listing, 0, len(content))
	for _, m := range content {
		listings = append(listings, banktracker.Listing{
			ID:                m.ID,
			Name:              m.Name,
			Symbol:            m.Symbol,
			Price:             m.CurrentPrice,
			Change24h:         m.PriceChangePercentage24h,
			MarketCap:         m.MarketCap,
			Volume:            m.TotalVolume,
			CirculatingSupply: m.CirculatingSupply,
			Sparkline:         m.Sparkline.Price,
		})
	}
	return listings, nil
}
