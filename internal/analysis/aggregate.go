package analysis

import (
	"sort"

	"github.com/hhe-bench/hheperf/internal/models"
	"github.com/hhe-bench/hheperf/internal/parser"
)

// Grouped buckets combined records by operation category.
func Grouped(records []models.CombinedRecord) map[string][]models.CombinedRecord {
	groups := make(map[string][]models.CombinedRecord)
	for _, r := range records {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}

// Averages reduces one category group to its summary statistics. An empty
// group yields a zeroed CategoryStats with Count 0.
func Averages(records []models.CombinedRecord) models.CategoryStats {
	stats := models.CategoryStats{Count: len(records)}
	if len(records) == 0 {
		return stats
	}

	for _, r := range records {
		stats.AvgDuration += r.Duration
		stats.AvgRAMDelta += float64(r.RAMDeltaKB)
		stats.AvgSwapDelta += float64(r.SwapDeltaKB)
		if r.RAMPeakKB > stats.MaxRAMPeak {
			stats.MaxRAMPeak = r.RAMPeakKB
		}
	}
	n := float64(len(records))
	stats.AvgDuration /= n
	stats.AvgRAMDelta /= n
	stats.AvgSwapDelta /= n
	return stats
}

// BuildRunReport combines both log streams of one run into its report. The
// known categories come first in their fixed reporting order; any remaining
// categories follow alphabetically so no data is lost to the fixed list.
func BuildRunReport(meta models.RunMetadata, timeData *parser.TimeLogData, memData *parser.MemoryLogData) models.RunReport {
	report := models.RunReport{
		Component:      meta.Component,
		Variant:        meta.Variant,
		BatchNr:        meta.BatchNr,
		BatchSize:      meta.BatchSize,
		IntSize:        meta.IntSize,
		SourceFile:     meta.Filename,
		Initialization: memData.Initialization,
	}

	groups := Grouped(Combine(timeData.Spans, memData.Spans))

	seen := make(map[string]bool)
	for _, cat := range models.CategoryOrder {
		if recs, ok := groups[cat]; ok {
			report.Categories = append(report.Categories, models.CategoryReport{
				Category: cat,
				Stats:    Averages(recs),
			})
			seen[cat] = true
		}
	}

	rest := make([]string, 0, len(groups))
	for cat := range groups {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	for _, cat := range rest {
		report.Categories = append(report.Categories, models.CategoryReport{
			Category: cat,
			Stats:    Averages(groups[cat]),
		})
	}
	return report
}
