package renderer

import (
	"bytes"
	"fmt"
	"sort"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	md "github.com/nao1215/markdown"
)

// AssetMarkdown renders the detail view of one asset: the multi-source price
// comparison and the 7-day price history.
func AssetMarkdown(a *banktracker.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", a.Name, a.Symbol))

	doc.H2("Price by source")
	comparison := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Source", "Price"},
		Rows:      [][]string{{"coinGecko", a.Price.String()}},
	}
	names := make([]string, 0, len(a.Quotes))
	for name := range a.Quotes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		comparison.Rows = append(comparison.Rows, []string{name, a.Quotes[name].String()})
	}
	doc.Table(comparison)

	if a.Volume != nil || a.CirculatingSupply != nil {
		doc.H2("Market")
		market := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Figure", "Value"},
			Rows: [][]string{
				{"Market cap", billions(a.MarketCap)},
				{"24h volume", billions(a.Volume)},
				{"24h change", change(a.Change24h)},
			},
		}
		doc.Table(market)
	}

	doc.H2("7-day history")
	history := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Price"},
		Rows:      [][]string{},
	}
	for i := 0; i < a.History.Len(); i++ {
		on, price := a.History.At(i)
		history.Rows = append(history.Rows, []string{on.String(), fmt.Sprintf("$%.2f", price)})
	}
	doc.Table(history)

	return doc.String()
}
