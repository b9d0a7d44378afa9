package banktracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CsikSzabi04/Bank-Tracker/date"
)

type fakeLister struct {
	listings []Listing
	err      error
	calls    int
	// release, when set, blocks Fetch until closed.
	release chan struct{}
}

func (f *fakeLister) Name() string { return "coinGecko" }
func (f *fakeLister) Fetch(ctx context.Context) ([]Listing, error) {
	f.calls++
	if f.release != nil {
		<-f.release
	}
	return f.listings, f.err
}

type fakeQuoter struct {
	name  string
	set   QuoteSet
	err   error
	calls int
}

func (f *fakeQuoter) Name() string { return f.name }
func (f *fakeQuoter) Fetch(ctx context.Context) (QuoteSet, error) {
	f.calls++
	return f.set, f.err
}

func fptr(v float64) *float64 { return &v }

func bitcoinListing() Listing {
	return Listing{
		ID:        "bitcoin",
		Name:      "Bitcoin",
		Symbol:    "btc",
		Price:     fptr(50000),
		Change24h: fptr(2.5),
		MarketCap: fptr(1.2e12),
		Sparkline: []float64{48000, 48500, 49000, 49500, 49800, 50000, 50200},
	}
}

func TestRefreshMergesSources(t *testing.T) {
	lister := &fakeLister{listings: []Listing{bitcoinListing()}}
	binance := &fakeQuoter{name: "binance", set: SingleQuote{Symbol: "BTC", Price: P(50100)}}
	cmc := &fakeQuoter{name: "coinMarketCap", err: errors.New("no API key configured")}

	agg := NewAggregator(lister, binance, cmc)
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return fixed }

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	view := agg.View()
	if len(view.Assets) != 1 {
		t.Fatalf("got %d assets, want 1", len(view.Assets))
	}
	a := view.Assets[0]
	if a.ID != "bitcoin" || a.Symbol != "BTC" {
		t.Errorf("asset is %s/%s, want bitcoin/BTC", a.ID, a.Symbol)
	}
	if !a.Price.Equal(P(50000)) {
		t.Errorf("price is %s, want $50,000.00", a.Price)
	}
	if q, ok := a.Quotes["binance"]; !ok || !q.Equal(P(50100)) {
		t.Errorf("binance quote is %v (present=%v), want $50,100.00", q, ok)
	}
	if _, ok := a.Quotes["coinMarketCap"]; ok {
		t.Error("a failed source must not contribute a quote")
	}

	if st := view.Statuses["coinGecko"]; st.State != StateSuccess || !st.LastUpdated.Equal(fixed) {
		t.Errorf("coinGecko status is %+v, want success at %v", st, fixed)
	}
	if st := view.Statuses["binance"]; st.State != StateSuccess {
		t.Errorf("binance status is %+v, want success", st)
	}
	if st := view.Statuses["coinMarketCap"]; st.State != StateError || st.Err == "" {
		t.Errorf("coinMarketCap status is %+v, want error with a message", st)
	}

	if view.SelectedID != "bitcoin" {
		t.Errorf("selected is %q, want the first asset", view.SelectedID)
	}
	if view.Err != "" {
		t.Errorf("view error is %q, want empty", view.Err)
	}
}

func TestRefreshHistoryShape(t *testing.T) {
	// A high resolution sparkline, like the real one: one point per hour.
	sparkline := make([]float64, 168)
	for i := range sparkline {
		sparkline[i] = float64(i)
	}
	l := bitcoinListing()
	l.Sparkline = sparkline

	lister := &fakeLister{listings: []Listing{l}}
	agg := NewAggregator(lister)
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	agg.now = func() time.Time { return fixed }

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	h := agg.View().Assets[0].History
	if h.Len() != HistoryDays {
		t.Fatalf("history has %d points, want %d", h.Len(), HistoryDays)
	}
	today := date.FromTime(fixed)
	for i := 0; i < h.Len(); i++ {
		day, _ := h.At(i)
		want := today.Add(i - HistoryDays + 1)
		if day != want {
			t.Errorf("point %d is dated %s, want %s", i, day, want)
		}
	}
	if day, v := h.Latest(); day != today || v != 167 {
		t.Errorf("latest point is %s=%v, want %s=167", day, v, today)
	}
}

func TestRefreshPrimaryFailureKeepsAssets(t *testing.T) {
	lister := &fakeLister{listings: []Listing{bitcoinListing()}}
	quoter := &fakeQuoter{name: "binance", set: SingleQuote{Symbol: "BTC", Price: P(50100)}}
	agg := NewAggregator(lister, quoter)
	agg.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	quoterCalls := quoter.calls

	lister.err = errors.New("rate limited")
	lister.listings = nil
	err := agg.Refresh(context.Background())

	var aggErr *AggregationError
	if !errors.As(err, &aggErr) {
		t.Fatalf("second Refresh returned %v, want an AggregationError", err)
	}
	if aggErr.Source != "coinGecko" {
		t.Errorf("failed source is %q, want coinGecko", aggErr.Source)
	}

	view := agg.View()
	if len(view.Assets) != 1 {
		t.Fatalf("stale assets were dropped: got %d, want 1", len(view.Assets))
	}
	if view.Err == "" {
		t.Error("view error must report the failed cycle")
	}
	if st := view.Statuses["coinGecko"]; st.State != StateError {
		t.Errorf("coinGecko status is %+v, want error", st)
	}
	// the supplemental fan-out is gated on the primary: it must not run.
	if quoter.calls != quoterCalls {
		t.Errorf("supplemental source was fetched %d times during the failed cycle", quoter.calls-quoterCalls)
	}
	if st := view.Statuses["binance"]; st.State != StateLoading {
		t.Errorf("binance status is %+v, want loading (cycle aborted before it resolved)", st)
	}

	// The next successful cycle fully recovers, including the supplemental
	// slot left at loading by the aborted cycle.
	lister.err = nil
	lister.listings = []Listing{bitcoinListing()}
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("third Refresh: %v", err)
	}
	view = agg.View()
	if view.Err != "" {
		t.Errorf("view error is %q after a successful cycle, want empty", view.Err)
	}
	if st := view.Statuses["binance"]; st.State != StateSuccess {
		t.Errorf("binance status is %+v after recovery, want success", st)
	}
}

func TestRefreshSupplementalFailureIsIsolated(t *testing.T) {
	lister := &fakeLister{listings: []Listing{bitcoinListing()}}
	good := &fakeQuoter{name: "binance", set: SingleQuote{Symbol: "BTC", Price: P(50100)}}
	bad := &fakeQuoter{name: "cryptoCompare", err: errors.New("boom")}
	agg := NewAggregator(lister, good, bad)
	agg.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh must absorb supplemental failures, got %v", err)
	}

	view := agg.View()
	a := view.Assets[0]
	if _, ok := a.Quotes["binance"]; !ok {
		t.Error("healthy supplemental source lost its quote")
	}
	if _, ok := a.Quotes["cryptoCompare"]; ok {
		t.Error("failed supplemental source must stay absent from Quotes")
	}
	if st := view.Statuses["cryptoCompare"]; st.State != StateError || st.Err != "boom" {
		t.Errorf("cryptoCompare status is %+v, want error %q", st, "boom")
	}
}

func TestRefreshWhileInFlight(t *testing.T) {
	lister := &fakeLister{listings: []Listing{bitcoinListing()}, release: make(chan struct{})}
	agg := NewAggregator(lister)
	agg.now = time.Now

	done := make(chan error)
	go func() { done <- agg.Refresh(context.Background()) }()

	// Wait for the first cycle to reach its (blocked) primary fetch.
	for {
		if agg.View().Statuses["coinGecko"].State == StateLoading {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := agg.Refresh(context.Background()); !errors.Is(err, ErrRefreshInFlight) {
		t.Errorf("concurrent Refresh returned %v, want ErrRefreshInFlight", err)
	}

	close(lister.release)
	if err := <-done; err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	// Once the cycle settled, a new one is accepted again.
	lister.release = nil
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("post-cycle Refresh: %v", err)
	}
}

func TestSelectionSurvivesRefresh(t *testing.T) {
	eth := Listing{ID: "ethereum", Name: "Ethereum", Symbol: "eth", Price: fptr(3000)}
	lister := &fakeLister{listings: []Listing{bitcoinListing(), eth}}
	agg := NewAggregator(lister)
	agg.now = time.Now

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := agg.Select("ethereum"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := agg.Select("dogecoin"); err == nil {
		t.Error("selecting an unknown asset must fail")
	}

	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := agg.View().SelectedID; got != "ethereum" {
		t.Errorf("selection after refresh is %q, want ethereum", got)
	}

	// When the selected asset disappears, selection falls back to the first.
	lister.listings = []Listing{bitcoinListing()}
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := agg.View().SelectedID; got != "bitcoin" {
		t.Errorf("selection after the asset vanished is %q, want bitcoin", got)
	}
}

func TestQueryFiltersAssets(t *testing.T) {
	eth := Listing{ID: "ethereum", Name: "Ethereum", Symbol: "eth", Price: fptr(3000)}
	lister := &fakeLister{listings: []Listing{bitcoinListing(), eth}}
	agg := NewAggregator(lister)
	agg.now = time.Now
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	agg.SetQuery("ETH")
	filtered := agg.View().Filtered()
	if len(filtered) != 1 || filtered[0].ID != "ethereum" {
		t.Errorf("filtered = %v, want just ethereum", filtered)
	}

	agg.SetQuery("")
	if got := len(agg.View().Filtered()); got != 2 {
		t.Errorf("empty query filtered to %d assets, want 2", got)
	}
}

func TestViewSnapshotIsImmutable(t *testing.T) {
	lister := &fakeLister{listings: []Listing{bitcoinListing()}}
	agg := NewAggregator(lister)
	agg.now = time.Now
	if err := agg.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	before := agg.View()
	agg.SetQuery("xrp")
	if before.Query == "xrp" {
		t.Error("an already published snapshot was mutated by SetQuery")
	}
}
