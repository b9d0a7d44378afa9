package banktracker

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Price is an optional USD quote. The zero value is "not quoted", which is
// distinct from a quote of zero: a source that had no match for a symbol
// stays unset, it is never defaulted to 0.
type Price struct {
	value decimal.Decimal
	valid bool
}

func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value), valid: true}
}

// IsSet reports whether the price carries an actual quote.
func (p Price) IsSet() bool { return p.valid }

// Decimal returns the quote value. Only meaningful when IsSet.
func (p Price) Decimal() decimal.Decimal { return p.value }

// Money returns the quote as a USD monetary value. Only meaningful when IsSet.
func (p Price) Money() Money { return Money{value: p.value, cur: "USD"} }

// Mul returns the USD value of q units at this price.
func (p Price) Mul(q Quantity) Money { return p.Money().Mul(q) }

func (p Price) Equal(o Price) bool {
	if p.valid != o.valid {
		return false
	}
	return !p.valid || p.value.Equal(o.value)
}

// String renders the quote, or "n/a" when unset.
func (p Price) String() string {
	if !p.valid {
		return "n/a"
	}
	return p.Money().String()
}

// MarshalJSON encodes an unset price as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return p.value.MarshalJSON()
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}
	if err := p.value.UnmarshalJSON(data); err != nil {
		return err
	}
	p.valid = true
	return nil
}

var _ json.Marshaler = Price{}
var _ json.Unmarshaler = (*Price)(nil)
