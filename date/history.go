package date

import (
	"encoding/json"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a
// specific date. Dates are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.days = h.days[:0]
	h.values = h.values[:0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// At returns the i-th date and value in chronological order.
func (h *History[T]) At(i int) (Date, T) { return h.days[i], h.values[i] }

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// Append adds a point to the history.
//
// An existing value at that date is overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		// Last write wins at an existing date.
		h.values[i] = q
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, q)
	h.sort()
	return h
}

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].time().Before(s.days[j].time()) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// point is the persisted form of one history entry.
type point[T float32 | float64 | string] struct {
	Date  Date `json:"date"`
	Value T    `json:"value"`
}

// MarshalJSON encodes the history as an ordered array of {date, value} objects.
func (h History[T]) MarshalJSON() ([]byte, error) {
	points := make([]point[T], 0, len(h.days))
	for i, on := range h.days {
		points = append(points, point[T]{Date: on, Value: h.values[i]})
	}
	return json.Marshal(points)
}

func (h *History[T]) UnmarshalJSON(data []byte) error {
	var points []point[T]
	if err := json.Unmarshal(data, &points); err != nil {
		return err
	}
	h.Clear()
	for _, p := range points {
		h.Append(p.Date, p.Value)
	}
	return nil
}
