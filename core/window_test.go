package core

import (
	"testing"
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeries(times ...time.Time) *schema.Series {
	s := &schema.Series{Name: "Heavy Plate", Request: "Heavy Plate", BundleSize: 1}
	for i, ts := range times {
		s.Points = append(s.Points, schema.PricePoint{Time: ts, Price: decimal.NewFromInt(int64(100 + i))})
	}
	return s
}

// TestClipWindowInclusiveBounds keeps points exactly on either bound.
func TestClipWindowInclusiveBounds(t *testing.T) {
	t0 := baseTime
	t1 := baseTime.Add(time.Hour)
	t2 := baseTime.Add(2 * time.Hour)
	s := makeSeries(t0, t1, t2)

	clipped := ClipWindow(s, t0, t2)
	assert.Len(t, clipped.Points, 3)

	clipped = ClipWindow(s, t0.Add(time.Minute), t2.Add(-time.Minute))
	require.Len(t, clipped.Points, 1)
	assert.Equal(t, t1, clipped.Points[0].Time)
}

// TestClipWindowOpenBounds leaves a zero bound open on that side.
func TestClipWindowOpenBounds(t *testing.T) {
	t0 := baseTime
	t1 := baseTime.Add(time.Hour)
	s := makeSeries(t0, t1)

	assert.Len(t, ClipWindow(s, time.Time{}, time.Time{}).Points, 2)
	assert.Len(t, ClipWindow(s, t1, time.Time{}).Points, 1)
	assert.Len(t, ClipWindow(s, time.Time{}, t0).Points, 1)
}

// TestClipWindowSinglePoint returns exactly one point when since and until
// both equal its timestamp.
func TestClipWindowSinglePoint(t *testing.T) {
	t0 := baseTime
	s := makeSeries(t0, t0.Add(time.Hour))

	clipped := ClipWindow(s, t0, t0)
	require.Len(t, clipped.Points, 1)
	assert.Equal(t, t0, clipped.Points[0].Time)
}

// TestClipWindowExcludesEverything yields an empty series, not an error.
func TestClipWindowExcludesEverything(t *testing.T) {
	s := makeSeries(baseTime)
	clipped := ClipWindow(s, baseTime.Add(time.Hour), baseTime.Add(2*time.Hour))
	assert.Empty(t, clipped.Points)
	// Header fields survive the clip
	assert.Equal(t, "Heavy Plate", clipped.Name)
}

// TestClipWindowNeverSynthesizes keeps the first observation as the start
// even when since is far earlier.
func TestClipWindowNeverSynthesizes(t *testing.T) {
	s := makeSeries(baseTime)
	clipped := ClipWindow(s, baseTime.Add(-24*time.Hour), time.Time{})
	require.Len(t, clipped.Points, 1)
	assert.Equal(t, baseTime, clipped.Points[0].Time)
}
