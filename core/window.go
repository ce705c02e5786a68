package core

import (
	"time"

	"github.com/kanade13/deltaforce/schema"
)

// ClipWindow returns a copy of the series holding only the points inside the
// inclusive [since, until] range. Zero bounds leave the corresponding side
// open. The filter never synthesizes points: if since precedes the first
// observation, the result still starts at the first observation, and a range
// excluding every point yields an empty series.
func ClipWindow(s *schema.Series, since, until time.Time) *schema.Series {
	clipped := &schema.Series{
		Name:       s.Name,
		Request:    s.Request,
		Ammo:       s.Ammo,
		BundleSize: s.BundleSize,
	}
	for _, p := range s.Points {
		if !since.IsZero() && p.Time.Before(since) {
			continue
		}
		if !until.IsZero() && p.Time.After(until) {
			break
		}
		clipped.Points = append(clipped.Points, p)
	}
	return clipped
}
