package core

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/internal/outwriter"
	"github.com/kanade13/deltaforce/schema"
)

// ExecutePriceHistory runs the extraction pipeline and prints the results
// using the configured output format. It serves as the main entry point for
// the 'history' command.
func ExecutePriceHistory(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	result, err := GetPriceHistoryResult(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	logRunSummary(result.Summary)
	duration := time.Since(start)
	return outwriter.PrintHistoryResults(result, cfg, duration)
}

// GetPriceHistoryResult runs the full pipeline and returns the per-item
// resampled series plus the run summary. This is the programmatic entry point
// shared by the CLI and the MCP server.
func GetPriceHistoryResult(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.StoreManager) (schema.HistoryResult, error) {
	var store contract.SnapshotStore
	if mgr != nil {
		store = mgr.GetSnapshotStore()
	}
	source := NewSnapshotWalker(client, store, cfg.RepoPath, cfg.DatasetFile, cfg.Since, cfg.Until)

	series, summary, err := BuildSeries(ctx, cfg, source)
	if err != nil {
		return schema.HistoryResult{}, err
	}

	resampled := transformAll(cfg, series)
	return schema.HistoryResult{Series: resampled, Summary: summary}, nil
}

// BuildSeries walks the snapshot source once and assembles one ordered Series
// per resolved item. It never fails on per-snapshot or per-item issues; those
// are reported through the RunSummary. Only repository access errors abort.
func BuildSeries(ctx context.Context, cfg *contract.Config, source SnapshotSource) ([]*schema.Series, schema.RunSummary, error) {
	resolver := NewCatalogResolver(cfg.Items, cfg.Fuzzy)
	converter := NewBundleConverter(cfg.BundleSize, nil)
	assembler := NewSeriesAssembler(cfg.Dedup)

	var summary schema.RunSummary
	err := source.Walk(ctx, func(snap schema.Snapshot) error {
		observations, warnings, err := ParseSnapshot(snap.Hash, snap.Content)
		if err != nil {
			// The snapshot is dropped from the walk, not treated as zero prices.
			contract.LogWarn("dropping snapshot", err)
			summary.SnapshotsDropped++
			return nil
		}
		summary.SnapshotsWalked++
		summary.ParseWarnings += warnings

		for name := range observations {
			for _, b := range resolver.Observe(name) {
				assembler.Track(b.Name, b.Request, converter.IsAmmo(b.Name), converter.BundleSize())
			}
		}
		for name, obs := range observations {
			if !assembler.Tracked(name) {
				continue
			}
			converted, _ := converter.Convert(name, obs.Price)
			assembler.Append(name, snap.Time, converted)
		}
		return nil
	})
	if err != nil {
		return nil, summary, err
	}

	summary.SnapshotsDropped += source.Unreadable()
	summary.Unresolved = resolver.Unresolved()
	summary.Ambiguous = resolver.Ambiguous()
	return assembler.Finalize(), summary, nil
}

// transformAll clips every series to the configured window and applies the
// configured resampling. Items are independent once resolved, so the
// transforms run on a small worker pool and results keep the input order.
func transformAll(cfg *contract.Config, series []*schema.Series) []schema.ResampledSeries {
	out := make([]schema.ResampledSeries, len(series))
	if len(series) == 0 {
		return out
	}

	workers := min(cfg.Workers, len(series))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = transformOne(cfg, series[i])
			}
		}()
	}
	for i := range series {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

// transformOne applies window clipping and resampling to a single series.
func transformOne(cfg *contract.Config, s *schema.Series) schema.ResampledSeries {
	clipped := ClipWindow(s, cfg.Since, cfg.Until)
	switch cfg.Agg {
	case schema.DailyAgg, schema.WeeklyAgg:
		return AggregateMean(clipped, cfg.Agg)
	case schema.NoAgg:
		return schema.ResampledSeries{
			Name:       clipped.Name,
			Request:    clipped.Request,
			Ammo:       clipped.Ammo,
			BundleSize: clipped.BundleSize,
			Points:     clipped.Points,
		}
	default:
		return Resample(clipped, cfg.Cadence, cfg.FillLimit)
	}
}

// logRunSummary surfaces the non-fatal issues of a run on stderr.
func logRunSummary(summary schema.RunSummary) {
	if summary.SnapshotsDropped > 0 {
		contract.LogWarn(fmt.Sprintf("%d snapshot(s) were unreadable or unparseable and were dropped", summary.SnapshotsDropped), nil)
	}
	if summary.ParseWarnings > 0 {
		contract.LogWarn(fmt.Sprintf("%d malformed dataset entries were skipped", summary.ParseWarnings), nil)
	}
	if len(summary.Unresolved) > 0 {
		contract.LogWarn("no price data found for: "+strings.Join(summary.Unresolved, ", "), nil)
	}
	for request, matches := range summary.Ambiguous {
		contract.LogWarn(fmt.Sprintf("%q matched %d items: %s", request, len(matches), strings.Join(matches, ", ")), nil)
	}
}
