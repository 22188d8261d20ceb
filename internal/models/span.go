package models

import "time"

// MemorySnapshot groups the readings attached to a single log event.
type MemorySnapshot struct {
	RAMKB     int64 `json:"ram_kb" yaml:"ram_kb"`
	SwapKB    int64 `json:"swap_kb" yaml:"swap_kb"`
	RAMPeakKB int64 `json:"ram_peak_kb" yaml:"ram_peak_kb"`
}

// Span is one Start/End operation pair from a single log stream. Spans from
// the time log carry timestamps, spans from the memory log carry snapshots.
type Span struct {
	Name        string
	Category    string
	StartTime   time.Time
	EndTime     time.Time
	StartMemory *MemorySnapshot
	EndMemory   *MemorySnapshot
}

// Duration is the wall-clock length of a closed time-log span.
func (s Span) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// CombinedRecord joins a time-log span with its memory-log counterpart.
// Records without a memory counterpart keep their duration and carry zeroed
// memory fields.
type CombinedRecord struct {
	Category    string
	Duration    float64 // seconds
	RAMDeltaKB  int64
	SwapDeltaKB int64
	RAMPeakKB   int64
}
