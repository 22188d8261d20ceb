package analysis

import "github.com/hhe-bench/hheperf/internal/models"

// Combine pairs each closed time-log span with a memory-log span of the same
// name, producing one record per time-log span. Spans without a memory
// counterpart still produce a record; only their memory fields stay zero.
func Combine(timeSpans, memorySpans []models.Span) []models.CombinedRecord {
	records := make([]models.CombinedRecord, 0, len(timeSpans))
	for _, ts := range timeSpans {
		rec := models.CombinedRecord{
			Category: ts.Category,
			Duration: ts.Duration().Seconds(),
		}
		if ms := firstComplete(memorySpans, ts.Name); ms != nil {
			rec.RAMDeltaKB = ms.EndMemory.RAMKB - ms.StartMemory.RAMKB
			rec.SwapDeltaKB = ms.EndMemory.SwapKB - ms.StartMemory.SwapKB
			rec.RAMPeakKB = ms.EndMemory.RAMPeakKB
		}
		records = append(records, rec)
	}
	return records
}

// firstComplete returns the first span named name that carries both memory
// snapshots. Repeated names all resolve to this same span; pairing the k-th
// time-log occurrence with the k-th memory-log occurrence is intentionally
// not attempted.
func firstComplete(spans []models.Span, name string) *models.Span {
	for i := range spans {
		s := &spans[i]
		if s.Name == name && s.StartMemory != nil && s.EndMemory != nil {
			return s
		}
	}
	return nil
}
