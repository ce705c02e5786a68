package core

import (
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/shopspring/decimal"
)

// SeriesAssembler accumulates one Series per canonical item name as the walk
// proceeds. Points arrive in walk order, so each series stays ordered by
// timestamp without sorting.
type SeriesAssembler struct {
	dedup  bool
	order  []string
	series map[string]*schema.Series
}

// NewSeriesAssembler creates an assembler. When dedup is enabled, a point
// repeating the previous price of its series is suppressed.
func NewSeriesAssembler(dedup bool) *SeriesAssembler {
	return &SeriesAssembler{
		dedup:  dedup,
		series: make(map[string]*schema.Series),
	}
}

// Track creates an empty series for a newly bound canonical name. Tracking
// the same name twice is a no-op, so a name matched by several fuzzy requests
// keeps a single series owned by the first request that bound it.
func (a *SeriesAssembler) Track(name, request string, ammo bool, bundleSize int) {
	if _, ok := a.series[name]; ok {
		return
	}
	if !ammo {
		bundleSize = 1
	}
	a.series[name] = &schema.Series{
		Name:       name,
		Request:    request,
		Ammo:       ammo,
		BundleSize: bundleSize,
	}
	a.order = append(a.order, name)
}

// Tracked reports whether the canonical name has a series.
func (a *SeriesAssembler) Tracked(name string) bool {
	_, ok := a.series[name]
	return ok
}

// Append adds one converted price point to the named series. A point sharing
// the timestamp of the previous point replaces it (last write wins). Appends
// for untracked names are ignored.
func (a *SeriesAssembler) Append(name string, t time.Time, price decimal.Decimal) {
	s, ok := a.series[name]
	if !ok {
		return
	}
	if last, ok := s.Last(); ok {
		if t.Before(last.Time) {
			// Walk order is non-decreasing; never reorder a series.
			return
		}
		if t.Equal(last.Time) {
			s.Points[len(s.Points)-1].Price = price
			return
		}
		if a.dedup && price.Equal(last.Price) {
			return
		}
	}
	s.Points = append(s.Points, schema.PricePoint{Time: t, Price: price})
}

// Finalize returns all series in first-bind order. The assembler must not be
// appended to afterwards.
func (a *SeriesAssembler) Finalize() []*schema.Series {
	out := make([]*schema.Series, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.series[name])
	}
	return out
}
