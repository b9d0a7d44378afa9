// Package renderer turns dashboard state into markdown reports.
package renderer

import (
	"fmt"

	banktracker "github.com/CsikSzabi04/Bank-Tracker"
)

// notAvailable is rendered wherever a figure is unknown. Unknown figures are
// never shown as 0, NaN or Infinity.
const notAvailable = "n/a"

// billions renders a large optional USD figure the way the dashboard did,
// e.g. "$1.02B".
func billions(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("$%.2fB", *v/1e9)
}

func change(p *banktracker.Percent) string {
	if p == nil {
		return notAvailable
	}
	return p.SignedString()
}
