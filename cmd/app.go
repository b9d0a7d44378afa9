// Package cmd implements the CLI application to run the dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	"github.com/CsikSzabi04/Bank-Tracker/binance"
	"github.com/CsikSzabi04/Bank-Tracker/coingecko"
	"github.com/CsikSzabi04/Bank-Tracker/coinmarketcap"
	"github.com/CsikSzabi04/Bank-Tracker/cryptocompare"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&refreshCmd{}, "market")
	c.Register(&assetsCmd{}, "market")
	c.Register(&showCmd{}, "market")

	c.Register(&addCmd{}, "portfolio")
	c.Register(&portfolioCmd{}, "portfolio")

	c.Register(&incomeCmd{}, "bank")
	c.Register(&expenseCmd{}, "bank")
	c.Register(&txCmd{}, "bank")
	c.Register(&summaryCmd{}, "bank")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".bank-tracker", "Path to the folder holding the dashboard state")

const cmcApiKeyEnv = "CMC_PRO_API_KEY"

var cmcApiFlag = flag.String("cmc-api-key", "", "CoinMarketCap API key used for the coinMarketCap quote source.\n If missing it will read the environment variable \""+cmcApiKeyEnv+"\". Without a key the source is skipped.")

func cmcApiKey() string {
	if *cmcApiFlag == "" {
		*cmcApiFlag = os.Getenv(cmcApiKeyEnv)
	}
	return *cmcApiFlag
}

func openStore() *banktracker.Store {
	return banktracker.NewStore(*dataDir)
}

// newAggregator assembles the full source stack: coinGecko as the listing
// source, the three quote sources as supplementals.
func newAggregator() *banktracker.Aggregator {
	return banktracker.NewAggregator(
		coingecko.New(),
		cryptocompare.New(),
		binance.New(),
		coinmarketcap.New(cmcApiKey()),
	)
}

// loadView restores the last persisted market snapshot into the aggregator,
// so a failed refresh can still show yesterday's data.
func loadView(s *banktracker.Store, agg *banktracker.Aggregator) error {
	var view banktracker.AggregateView
	ok, err := s.Get(banktracker.StoreMarket, &view)
	if err != nil {
		return err
	}
	if ok {
		agg.Restore(&view)
	}
	return nil
}

func loadPortfolio(s *banktracker.Store) (*banktracker.Portfolio, error) {
	var p banktracker.Portfolio
	if _, err := s.Get(banktracker.StorePortfolio, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func loadLedger(s *banktracker.Store) (*banktracker.Ledger, error) {
	l := banktracker.NewLedger()
	if _, err := s.Get(banktracker.StoreBank, l); err != nil {
		return nil, err
	}
	return l, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
