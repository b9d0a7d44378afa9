package renderer

import (
	"bytes"
	"fmt"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the holdings with their live valuation. Every
// figure is recomputed from the current view at render time; nothing here is
// cached between renders.
func PortfolioMarkdown(p *banktracker.Portfolio, lookup banktracker.PriceLookup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("My Crypto Portfolio")
	if len(p.Holdings) == 0 {
		doc.PlainText("Your portfolio is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Quantity", "Purchased", "Cost", "Value", "P/L", "P/L %"},
		Rows:   [][]string{},
	}

	var total banktracker.Money
	totalKnown := true
	for _, h := range p.Holdings {
		v := banktracker.Valuate(h, lookup)

		cost, value, pl, plPct := notAvailable, notAvailable, notAvailable, notAvailable
		if v.CostKnown {
			cost = v.Cost.String()
		}
		if v.CurrentKnown {
			value = v.Current.String()
			total = total.Add(v.Current)
		} else {
			totalKnown = false
		}
		if v.ProfitLossKnown {
			pl = v.ProfitLoss.SignedString()
		}
		if v.PercentKnown {
			plPct = v.ProfitLossPercent.SignedString()
		}

		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s (%s)", h.Name, h.Symbol),
			h.Quantity.String(),
			h.AcquiredAt.Format("2006-01-02 15:04"),
			cost,
			value,
			pl,
			plPct,
		})
	}
	doc.Table(table)

	if totalKnown {
		doc.PlainText(fmt.Sprintf("Total value: %s", total))
	} else {
		doc.PlainText(fmt.Sprintf("Total value: %s (some holdings could not be valued)", notAvailable))
	}
	return doc.String()
}
