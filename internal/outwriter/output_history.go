package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/internal/parquet"
	"github.com/kanade13/deltaforce/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHistoryResults outputs the extraction results, dispatching based on the
// output format configured.
func PrintHistoryResults(result schema.HistoryResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForHistory(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForHistory(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteHistoryParquet(result, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote Parquet history results to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		if err := printHistoryTable(result, cfg, duration); err != nil {
			return fmt.Errorf("error writing history table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForHistory handles opening the file and calling the JSON writer.
func printJSONResultsForHistory(result schema.HistoryResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForHistory(w, result)
	}, "Wrote JSON history results")
}

// printCSVResultsForHistory handles opening the file and calling the CSV writer.
func printCSVResultsForHistory(result schema.HistoryResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"timestamp", "item", "price"}, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForHistory(csvWriter, result, int32(cfg.Precision))
		})
	}, "Wrote CSV history results")
}

// printHistoryTable prints the history in a three-column table.
func printHistoryTable(result schema.HistoryResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	// --- 1. Define Headers ---
	table.Header([]string{"Time", "Item", "Price"})

	// --- 2. Configure Alignment ---
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	maxItemWidth := GetMaxTableItemWidth(cfg)
	var data [][]string
	points := 0
	for _, s := range result.Series {
		label := contract.GetItemLabel(TruncateItem(s.Label(), maxItemWidth), s.Ammo, cfg.UseColors)
		for _, p := range s.Points {
			data = append(data, []string{
				p.Time.Format(contract.DateTimeFormat),
				label,
				p.Price.StringFixed(int32(cfg.Precision)),
			})
			points++
		}
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Extracted %d points across %d series from %d snapshots in %v. Cache backend: %s\n",
		points, len(result.Series), result.Summary.SnapshotsWalked, duration, cfg.CacheBackend)
	return nil
}
