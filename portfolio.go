package banktracker

import (
	"time"
)

// Holding is a recorded portfolio position. Its acquisition facts are frozen
// at creation and never updated; valuation is always recomputed from live
// asset state at query time.
type Holding struct {
	AssetID string `json:"assetId"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`

	Quantity Quantity `json:"quantity"`

	// AcquisitionPrice is the primary-source price at the moment of
	// acquisition. It stays unset when the asset had no known price, and
	// downstream valuation then treats the cost basis as unknown.
	AcquisitionPrice Price `json:"acquisitionPrice"`

	AcquiredAt time.Time `json:"acquiredAt"`
}

// Portfolio is the list of holdings. Holdings are never edited or removed
// individually; the only mutations are Add and Clear.
type Portfolio struct {
	Holdings []Holding `json:"holdings"`
}

// Add records a new position in the asset at its current price.
//
// quantityInput is parsed as a decimal number; input that does not parse to a
// positive quantity coerces to 0 and the holding is still created. That is a
// deliberate quirk inherited from the dashboard, not an error path.
func (p *Portfolio) Add(asset Asset, quantityInput string, at time.Time) Holding {
	qty, err := ParseQuantity(quantityInput)
	if err != nil || qty.IsNegative() {
		qty = Q(0)
	}
	h := Holding{
		AssetID:          asset.ID,
		Name:             asset.Name,
		Symbol:           asset.Symbol,
		Quantity:         qty,
		AcquisitionPrice: asset.Price,
		AcquiredAt:       at,
	}
	p.Holdings = append(p.Holdings, h)
	return h
}

// Clear destroys the whole portfolio.
func (p *Portfolio) Clear() { p.Holdings = nil }

// PriceLookup resolves a holding's asset in the current aggregate view.
type PriceLookup func(assetID string) (Asset, bool)

// Valuation is the derived value of one holding against live prices. Each
// figure carries a known flag: an unknown figure is reported as such, never
// as zero, NaN or Infinity.
type Valuation struct {
	// Live is the current unit price, unset when the asset is gone from the
	// aggregate view or has no primary price.
	Live Price

	Current      Money
	CurrentKnown bool

	Cost      Money
	CostKnown bool

	ProfitLoss      Money
	ProfitLossKnown bool

	ProfitLossPercent Percent
	PercentKnown      bool
}

// Valuate computes the live valuation of a holding. It is pure: nothing is
// cached and the holding is not modified.
func Valuate(h Holding, lookup PriceLookup) Valuation {
	var v Valuation
	if asset, ok := lookup(h.AssetID); ok && asset.Price.IsSet() {
		v.Live = asset.Price
		v.Current = asset.Price.Mul(h.Quantity)
		v.CurrentKnown = true
	}
	if h.AcquisitionPrice.IsSet() {
		v.Cost = h.AcquisitionPrice.Mul(h.Quantity)
		v.CostKnown = true
	}
	if v.CurrentKnown && v.CostKnown {
		v.ProfitLoss = v.Current.Sub(v.Cost)
		v.ProfitLossKnown = true
		// A zero cost basis (zero quantity or free acquisition) has no
		// meaningful percentage; report it unknown rather than dividing.
		if !v.Cost.IsZero() {
			ratio := v.ProfitLoss.Decimal().Div(v.Cost.Decimal())
			v.ProfitLossPercent = Percent(ratio.InexactFloat64() * 100)
			v.PercentKnown = true
		}
	}
	return v
}
