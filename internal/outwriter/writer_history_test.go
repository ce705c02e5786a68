package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() schema.HistoryResult {
	t0 := time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)
	return schema.HistoryResult{
		Series: []schema.ResampledSeries{
			{
				Name:       "7.62x54R BT",
				Request:    "7.62x54R BT",
				Ammo:       true,
				BundleSize: 60,
				Cadence:    "10m0s",
				Points: []schema.PricePoint{
					{Time: t0, Price: decimal.NewFromInt(600)},
					{Time: t0.Add(10 * time.Minute), Price: decimal.NewFromInt(720)},
				},
			},
		},
		Summary: schema.RunSummary{SnapshotsWalked: 2},
	}
}

// TestWriteCSVResultsForHistory emits one row per point with the bundle label
// and fixed-precision prices.
func TestWriteCSVResultsForHistory(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVResultsForHistory(w, sampleResult(), 2))
	w.Flush()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-08-20T10:00:00Z,7.62x54R BT (x60),600.00", string(lines[0]))
	assert.Equal(t, "2025-08-20T10:10:00Z,7.62x54R BT (x60),720.00", string(lines[1]))
}

// TestWriteJSONResultsForHistory round-trips the full result structure.
func TestWriteJSONResultsForHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForHistory(&buf, sampleResult()))

	var decoded schema.HistoryResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Series, 1)
	assert.Equal(t, "7.62x54R BT", decoded.Series[0].Name)
	assert.Len(t, decoded.Series[0].Points, 2)
	assert.Equal(t, 2, decoded.Summary.SnapshotsWalked)
}
