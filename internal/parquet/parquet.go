// Package parquet exports price history data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/parquet-go/parquet-go"
)

// HistoryRow is one (timestamp, item, price) observation in the export.
// The column set matches the CSV export for tooling parity.
type HistoryRow struct {
	// Timestamp is the grid or observation time (TIMESTAMP with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// Item is the canonical item name, annotated with the bundle multiplier for ammo
	Item string `parquet:"item,snappy"`

	// Price is the converted price rendered as a decimal string to avoid float artifacts
	Price string `parquet:"price,snappy"`

	// Request is the user-requested name this row resolved from
	Request string `parquet:"request,snappy"`

	// Ammo records the classifier's decision for the item
	Ammo bool `parquet:"ammo,snappy"`

	// BundleSize is the rounds-per-bundle multiplier applied (1 for non-ammo)
	BundleSize int32 `parquet:"bundle_size,snappy"`
}

// WriteHistoryParquet flattens the result into rows and writes them to a Parquet file.
func WriteHistoryParquet(result schema.HistoryResult, outputPath string) error {
	rows := make([]HistoryRow, 0)
	for _, s := range result.Series {
		label := s.Label()
		for _, p := range s.Points {
			rows = append(rows, HistoryRow{
				Timestamp:  p.Time,
				Item:       label,
				Price:      p.Price.String(),
				Request:    s.Request,
				Ammo:       s.Ammo,
				BundleSize: int32(s.BundleSize),
			})
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the HistoryRow struct tags
	writer := parquet.NewGenericWriter[HistoryRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
