// Package schema has the data model shared by all parts of deltaforce.
package schema

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one point-in-time capture of the price dataset,
// corresponding to one commit that touched the tracked file.
type Snapshot struct {
	Hash    string    // Commit hash that produced this snapshot
	Time    time.Time // Commit timestamp
	Content []byte    // Raw dataset content at that commit
}

// PriceObservation is a single item price parsed from one snapshot.
// Price uses decimal arithmetic so that bundle scaling stays exact.
type PriceObservation struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	RoundsPerUnit int             `json:"rounds_per_unit,omitempty"` // 0 when the dataset does not encode it
}

// PricePoint is one observation after unit conversion, owned by its Series.
type PricePoint struct {
	Time  time.Time       `json:"time"`
	Price decimal.Decimal `json:"price"`
}

// Series is the ordered price history for one canonical item name.
// Points are strictly increasing by timestamp.
type Series struct {
	Name       string       `json:"name"`
	Request    string       `json:"request"` // The user-requested name this series resolved from
	Ammo       bool         `json:"ammo"`
	BundleSize int          `json:"bundle_size"` // 1 for non-ammo items
	Points     []PricePoint `json:"points"`
}

// Label returns the display name for the series, annotated with the
// bundle size when the item is priced per bundle.
func (s *Series) Label() string {
	if s.Ammo && s.BundleSize > 1 {
		return s.Name + " (x" + strconv.Itoa(s.BundleSize) + ")"
	}
	return s.Name
}

// Last returns the most recent point, or false when the series is empty.
func (s *Series) Last() (PricePoint, bool) {
	if len(s.Points) == 0 {
		return PricePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ResampledSeries is a Series re-indexed onto a fixed time grid.
type ResampledSeries struct {
	Name       string       `json:"name"`
	Request    string       `json:"request"`
	Ammo       bool         `json:"ammo"`
	BundleSize int          `json:"bundle_size"`
	Cadence    string       `json:"cadence,omitempty"` // Empty for daily/weekly aggregates
	Points     []PricePoint `json:"points"`
}

// Label returns the display name for the series, annotated with the
// bundle size when the item is priced per bundle.
func (s *ResampledSeries) Label() string {
	if s.Ammo && s.BundleSize > 1 {
		return s.Name + " (x" + strconv.Itoa(s.BundleSize) + ")"
	}
	return s.Name
}

// ResolvedItem binds one user-requested name to zero or more canonical
// catalog names. Exact mode yields at most one match; fuzzy mode may
// yield several, and all of them are processed.
type ResolvedItem struct {
	Request string   `json:"request"`
	Matches []string `json:"matches"`
}

// RunSummary reports the non-fatal issues of an extraction run. A run with
// unresolved items or dropped snapshots still produces output for every
// series it could build.
type RunSummary struct {
	SnapshotsWalked  int                 `json:"snapshots_walked"`
	SnapshotsDropped int                 `json:"snapshots_dropped"` // Entirely unparseable snapshots
	ParseWarnings    int                 `json:"parse_warnings"`    // Individually skipped malformed entries
	Unresolved       []string            `json:"unresolved,omitempty"`
	Ambiguous        map[string][]string `json:"ambiguous,omitempty"` // Request -> all fuzzy matches
}

// HistoryResult is the full output of one extraction run.
type HistoryResult struct {
	Series  []ResampledSeries `json:"series"`
	Summary RunSummary        `json:"summary"`
}
