package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
)

// writeJSONResultsForHistory marshals the schema.HistoryResult to JSON and writes it.
func writeJSONResultsForHistory(w io.Writer, result schema.HistoryResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForHistory writes the per-point history rows to a CSV writer.
// Column order (timestamp, item, price) is stable across releases.
func writeCSVResultsForHistory(w *csv.Writer, result schema.HistoryResult, precision int32) error {
	for _, s := range result.Series {
		label := s.Label()
		for _, p := range s.Points {
			row := []string{
				p.Time.Format(contract.DateTimeFormat),
				label,
				p.Price.StringFixed(precision),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
