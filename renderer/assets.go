package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the asset table for the current view, honoring its
// query filter, plus the per-source status badges.
func AssetsMarkdown(v *banktracker.AggregateView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cryptocurrency & Commodities")
	doc.PlainText(statusLine(v.Statuses))
	if v.Err != "" {
		doc.PlainText(fmt.Sprintf("**Error:** %s (stale data below, run refresh to retry)", v.Err))
	}
	if v.Query != "" {
		doc.PlainText(fmt.Sprintf("Filter: %q", v.Query))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Symbol", "Price", "24h", "Market Cap"},
		Rows:   [][]string{},
	}
	for _, a := range v.Filtered() {
		name := a.Name
		if a.ID == v.SelectedID {
			name = "**" + name + "**"
		}
		table.Rows = append(table.Rows, []string{
			name,
			a.Symbol,
			a.Price.String(),
			change(a.Change24h),
			billions(a.MarketCap),
		})
	}
	doc.Table(table)

	return doc.String()
}

// statusLine renders the per-source health badges in a stable order.
func statusLine(statuses map[string]banktracker.SourceStatus) string {
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		st := statuses[name]
		badge := fmt.Sprintf("%s: %s", name, st.State)
		if !st.LastUpdated.IsZero() {
			badge += fmt.Sprintf(" (%s)", st.LastUpdated.Format("15:04:05"))
		}
		parts = append(parts, badge)
	}
	return strings.Join(parts, " · ")
}
