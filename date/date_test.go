package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025-13-01", wantErr: true},
		{in: "yesterday", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add_normalizes(t *testing.T) {
	d := New(2025, time.January, 31).Add(1)
	if d.String() != "2025-02-01" {
		t.Errorf("Add(1) = %s, want 2025-02-01", d)
	}
	if d.Add(-1) != New(2025, time.January, 31) {
		t.Errorf("Add(-1) does not round-trip: %s", d.Add(-1))
	}
}

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-01-03"), 3)
	h.Append(MustParse("2025-01-01"), 1)
	h.Append(MustParse("2025-01-02"), 2)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	var prev Date
	for i := 0; i < h.Len(); i++ {
		on, v := h.At(i)
		if i > 0 && !prev.Before(on) {
			t.Errorf("history out of order at %d: %s after %s", i, on, prev)
		}
		if int(v) != i+1 {
			t.Errorf("At(%d) value = %v, want %d", i, v, i+1)
		}
		prev = on
	}

	// Overwrite an existing point.
	h.Append(MustParse("2025-01-02"), 20)
	if v, _ := h.Get(MustParse("2025-01-02")); v != 20 {
		t.Errorf("overwrite failed, got %v", v)
	}
	if h.Len() != 3 {
		t.Errorf("overwrite changed length to %d", h.Len())
	}
}

func TestHistory_JSONRoundTrip(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2025-01-01"), 1.5)
	h.Append(MustParse("2025-01-02"), 2.5)

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back History[float64]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Len() != 2 {
		t.Fatalf("round-trip Len() = %d, want 2", back.Len())
	}
	day, v := back.Latest()
	if day != MustParse("2025-01-02") || v != 2.5 {
		t.Errorf("round-trip latest = %s %v", day, v)
	}
}
