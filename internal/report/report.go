package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hhe-bench/hheperf/internal/models"
)

const ruleWidth = 100

// Render produces the human-readable performance report. Runs appear sorted
// by component/variant key; the category sections follow the fixed order in
// models.CategoryOrder and categories outside that list are not printed.
func Render(reports []models.RunReport) string {
	rule := strings.Repeat("=", ruleWidth)
	dash := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("PERFORMANCE ANALYSIS\n")
	b.WriteString(rule + "\n\n")

	sorted := make([]models.RunReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })

	for _, r := range sorted {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "COMPONENT: %s | VARIANT: %s\n", strings.ToUpper(string(r.Component)), r.Variant)
		fmt.Fprintf(&b, "%s\n", rule)
		fmt.Fprintf(&b, "Source file: %s\n", r.SourceFile)
		fmt.Fprintf(&b, "Batch count: %d | Batch size: %d | Integer size: %d bit\n\n", r.BatchNr, r.BatchSize, r.IntSize)

		if r.Initialization != nil {
			b.WriteString("AFTER INITIALIZATION:\n")
			b.WriteString(dash + "\n")
			fmt.Fprintf(&b, "SWAP: %s\n", FormatMemory(float64(r.Initialization.SwapKB)))
			fmt.Fprintf(&b, "RAM: %s\n", FormatMemory(float64(r.Initialization.RAMKB)))
			fmt.Fprintf(&b, "RAM Peak: %s\n\n", FormatMemory(float64(r.Initialization.RAMPeakKB)))
		}

		b.WriteString("OPERATION AVERAGES:\n")
		b.WriteString(dash + "\n")

		byCategory := make(map[string]models.CategoryStats, len(r.Categories))
		for _, c := range r.Categories {
			byCategory[c.Category] = c.Stats
		}
		for _, category := range models.CategoryOrder {
			stats, ok := byCategory[category]
			if !ok || stats.Count == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s Average (n=%d):\n", category, stats.Count)
			fmt.Fprintf(&b, "   Time diff: %.6f s %s\n", stats.AvgDuration, formatClock(stats.AvgDuration))
			fmt.Fprintf(&b, "   SWAP diff: %s\n", FormatMemory(stats.AvgSwapDelta))
			fmt.Fprintf(&b, "   RAM diff: %s\n", FormatMemory(stats.AvgRAMDelta))
			fmt.Fprintf(&b, "   RAM Peak: %s\n", FormatMemory(float64(stats.MaxRAMPeak)))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("END OF ANALYSIS\n")
	b.WriteString(rule + "\n")
	return b.String()
}
