package banktracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/CsikSzabi04/Bank-Tracker/date"
)

// DefaultTimeout bounds the supplemental fan-out of one refresh cycle.
const DefaultTimeout = 10 * time.Second

// ErrRefreshInFlight is reported when Refresh is called while a previous
// cycle is still running. The new call is ignored.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// AggregationError reports a failed primary fetch: the one error that blocks
// producing a usable asset list for a cycle.
type AggregationError struct {
	Source string
	Err    error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed: source %s: %v", e.Source, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// AggregateView is the merged, displayable snapshot of all known assets plus
// per-source health. It is owned by the Aggregator and replaced wholesale at
// the end of each cycle; readers must treat it as immutable.
type AggregateView struct {
	Assets     []Asset                 `json:"assets"`
	Statuses   map[string]SourceStatus `json:"statuses"`
	SelectedID string                  `json:"selectedId,omitempty"`
	Query      string                  `json:"query,omitempty"`
	Err        string                  `json:"error,omitempty"`
}

// Find returns the asset with the given id.
func (v *AggregateView) Find(id string) (Asset, bool) {
	for _, a := range v.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// Selected returns the currently selected asset, or nil.
func (v *AggregateView) Selected() *Asset {
	if v.SelectedID == "" {
		return nil
	}
	if a, ok := v.Find(v.SelectedID); ok {
		return &a
	}
	return nil
}

// Filtered returns the assets matching the current query.
func (v *AggregateView) Filtered() []Asset {
	if v.Query == "" {
		return v.Assets
	}
	var out []Asset
	for _, a := range v.Assets {
		if a.Matches(v.Query) {
			out = append(out, a)
		}
	}
	return out
}

// clone copies the snapshot so the next cycle can be staged without mutating
// what readers already hold. Assets are shared: they are never edited in
// place once published.
func (v *AggregateView) clone() *AggregateView {
	next := *v
	next.Statuses = make(map[string]SourceStatus, len(v.Statuses))
	for name, st := range v.Statuses {
		next.Statuses[name] = st
	}
	return &next
}

// Aggregator merges one mandatory listing source and any number of
// best-effort quote sources into an AggregateView.
type Aggregator struct {
	primary Lister
	quoters []Quoter

	// Timeout bounds the supplemental fan-out. Zero means DefaultTimeout.
	Timeout time.Duration

	now func() time.Time

	mu         sync.Mutex
	refreshing bool
	view       *AggregateView
}

// NewAggregator returns an aggregator over the given sources, all idle.
func NewAggregator(primary Lister, quoters ...Quoter) *Aggregator {
	statuses := map[string]SourceStatus{primary.Name(): {}}
	for _, q := range quoters {
		statuses[q.Name()] = SourceStatus{}
	}
	return &Aggregator{
		primary: primary,
		quoters: quoters,
		now:     time.Now,
		view: &AggregateView{
			Assets:   []Asset{},
			Statuses: statuses,
		},
	}
}

// View returns the current snapshot. The returned view is replaced, never
// mutated, by later cycles, so it is safe to read without coordination.
func (a *Aggregator) View() *AggregateView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// Restore replaces the current snapshot with one previously persisted.
func (a *Aggregator) Restore(view *AggregateView) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if view.Statuses == nil {
		view.Statuses = make(map[string]SourceStatus)
	}
	a.view = view
}

// Select marks the asset with the given id as selected. It never triggers a
// network call.
func (a *Aggregator) Select(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.view.Find(id); !ok {
		return fmt.Errorf("unknown asset %q", id)
	}
	next := a.view.clone()
	next.SelectedID = id
	a.view = next
	return nil
}

// SetQuery updates the search query. It never triggers a network call.
func (a *Aggregator) SetQuery(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := a.view.clone()
	next.Query = query
	a.view = next
}

func (a *Aggregator) timeout() time.Duration {
	if a.Timeout > 0 {
		return a.Timeout
	}
	return DefaultTimeout
}

// quoteResult is the settled outcome of one supplemental fetch.
type quoteResult struct {
	set QuoteSet
	err error
}

// Refresh runs one aggregation cycle: the primary fetch gates a concurrent
// best-effort fan-out over the supplemental sources, and the merged result
// replaces the snapshot wholesale.
//
// A Refresh while another is in flight is ignored and reports
// ErrRefreshInFlight. On primary failure the previous assets are retained
// (stale beats empty), the supplemental sources are not attempted, and an
// AggregationError is returned. Supplemental failures are absorbed into
// their status slots and never returned.
func (a *Aggregator) Refresh(ctx context.Context) error {
	a.mu.Lock()
	if a.refreshing {
		a.mu.Unlock()
		return ErrRefreshInFlight
	}
	a.refreshing = true

	// Step 1: every source goes loading, the prior cycle error is cleared.
	staged := a.view.clone()
	staged.Err = ""
	for name, st := range staged.Statuses {
		staged.Statuses[name] = st.advance(StateLoading, time.Time{}, "")
	}
	a.view = staged
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.refreshing = false
		a.mu.Unlock()
	}()

	// Phase 1: the primary listing, which must succeed.
	listings, err := a.primary.Fetch(ctx)
	if err != nil {
		aggErr := &AggregationError{Source: a.primary.Name(), Err: err}
		a.mu.Lock()
		failed := a.view.clone()
		failed.Statuses[a.primary.Name()] = failed.Statuses[a.primary.Name()].advance(StateError, a.now(), err.Error())
		failed.Err = aggErr.Error()
		a.view = failed
		a.mu.Unlock()
		return aggErr
	}

	// Phase 2: best-effort fan-out over the supplemental sources. Each one
	// settles its own slot; the merge waits for all of them, bounded by the
	// timeout through the fetch context.
	fanCtx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	results := make([]quoteResult, len(a.quoters))
	var wg sync.WaitGroup
	for i, q := range a.quoters {
		wg.Add(1)
		go func(i int, q Quoter) {
			defer wg.Done()
			set, err := q.Fetch(fanCtx)
			results[i] = quoteResult{set: set, err: err}
		}(i, q)
	}
	wg.Wait()
	now := a.now()
	today := date.FromTime(now)

	// Merge: attach each source's quote to the listing assets it matches.
	assets := make([]Asset, 0, len(listings))
	for _, l := range listings {
		asset := assetFromListing(l, today)
		for i, q := range a.quoters {
			r := results[i]
			if r.err != nil || r.set == nil {
				continue
			}
			if p, ok := r.set.TryMatch(asset.Symbol); ok {
				if asset.Quotes == nil {
					asset.Quotes = make(map[string]Price)
				}
				asset.Quotes[q.Name()] = p
			}
		}
		assets = append(assets, asset)
	}

	// Publish the new snapshot.
	a.mu.Lock()
	defer a.mu.Unlock()
	next := a.view.clone()
	next.Assets = assets
	next.Err = ""
	next.Statuses[a.primary.Name()] = next.Statuses[a.primary.Name()].advance(StateSuccess, now, "")
	for i, q := range a.quoters {
		if r := results[i]; r.err != nil {
			next.Statuses[q.Name()] = next.Statuses[q.Name()].advance(StateError, now, r.err.Error())
		} else {
			next.Statuses[q.Name()] = next.Statuses[q.Name()].advance(StateSuccess, now, "")
		}
	}
	// Preserve the prior selection by id if still present, otherwise fall
	// back to the first asset.
	if _, ok := next.Find(next.SelectedID); !ok {
		next.SelectedID = ""
		if len(assets) > 0 {
			next.SelectedID = assets[0].ID
		}
	}
	a.view = next
	return nil
}

// assetFromListing shapes one raw primary record into an Asset.
func assetFromListing(l Listing, today date.Date) Asset {
	a := Asset{
		ID:                l.ID,
		Name:              l.Name,
		Symbol:            strings.ToUpper(l.Symbol),
		Change24h:         (*Percent)(l.Change24h),
		MarketCap:         l.MarketCap,
		Volume:            l.Volume,
		CirculatingSupply: l.CirculatingSupply,
		History:           historyFromSparkline(l.Sparkline, today),
	}
	if l.Price != nil {
		a.Price = P(*l.Price)
	}
	return a
}
