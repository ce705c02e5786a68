package core

import (
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/shopspring/decimal"
)

// Resample re-indexes a series onto a fixed time grid with forward-fill: the
// value at each grid point is the price of the most recent observation at or
// before it. Grid points before the first observation are omitted, never
// zero-filled, and an empty series resamples to an empty series.
//
// fillLimit caps how many consecutive grid points a single observation may
// fill (0 = unlimited). Grid points beyond the limit are omitted, leaving a
// gap instead of carrying a stale price across a long dead stretch.
func Resample(s *schema.Series, cadence time.Duration, fillLimit int) schema.ResampledSeries {
	out := schema.ResampledSeries{
		Name:       s.Name,
		Request:    s.Request,
		Ammo:       s.Ammo,
		BundleSize: s.BundleSize,
		Cadence:    cadence.String(),
	}
	if len(s.Points) == 0 {
		return out
	}

	first := s.Points[0].Time
	last := s.Points[len(s.Points)-1].Time

	// First grid point at or after the first observation; earlier grid
	// points have no value to carry.
	start := first.Truncate(cadence)
	if start.Before(first) {
		start = start.Add(cadence)
	}

	idx := 0
	steps := -1 // The grid point carrying a fresh observation does not count against fillLimit
	for t := start; !t.After(last); t = t.Add(cadence) {
		advanced := false
		for idx+1 < len(s.Points) && !s.Points[idx+1].Time.After(t) {
			idx++
			advanced = true
		}
		if advanced {
			steps = 0
		} else {
			steps++
		}
		if fillLimit > 0 && steps > fillLimit {
			continue
		}
		out.Points = append(out.Points, schema.PricePoint{Time: t, Price: s.Points[idx].Price})
	}
	return out
}

// AggregateMean condenses a series into calendar buckets (daily or weekly)
// and emits the mean price per bucket, timestamped at the bucket start.
// Means use decimal division rounded to two places.
func AggregateMean(s *schema.Series, mode schema.AggMode) schema.ResampledSeries {
	out := schema.ResampledSeries{
		Name:       s.Name,
		Request:    s.Request,
		Ammo:       s.Ammo,
		BundleSize: s.BundleSize,
		Cadence:    string(mode),
	}
	if len(s.Points) == 0 {
		return out
	}

	bucketStart := func(t time.Time) time.Time {
		y, m, d := t.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		if mode == schema.WeeklyAgg {
			// ISO weeks start on Monday.
			return day.AddDate(0, 0, -int((day.Weekday()+6)%7))
		}
		return day
	}

	current := bucketStart(s.Points[0].Time)
	var bucket []decimal.Decimal
	flush := func() {
		if len(bucket) == 0 {
			return
		}
		mean := decimal.Avg(bucket[0], bucket[1:]...).Round(2)
		out.Points = append(out.Points, schema.PricePoint{Time: current, Price: mean})
		bucket = bucket[:0]
	}

	for _, p := range s.Points {
		if start := bucketStart(p.Time); !start.Equal(current) {
			flush()
			current = start
		}
		bucket = append(bucket, p.Price)
	}
	flush()
	return out
}
