package models

import "time"

// Sample is one memory reading from the memory log. Readings that share a
// timestamp are merged into a single sample.
type Sample struct {
	Time      time.Time
	RAMKB     int64
	SwapKB    int64
	RAMPeakKB int64
	InBatch   bool
}

// MarkerKind classifies the initialisation lifecycle events.
type MarkerKind string

const (
	MarkerKeysParams  MarkerKind = "keys_params"
	MarkerZeroMQStart MarkerKind = "zeromq_start"
	MarkerZeroMQEnd   MarkerKind = "zeromq_end"
)

// LifecycleMarker pins a lifecycle event to the memory reading that followed
// it. RAMMB and SwapKB are the values of the consuming sample.
type LifecycleMarker struct {
	Kind   MarkerKind
	RAMMB  float64
	SwapKB int64
}

// MemorySeries is the plottable result of scanning one memory log: the
// time-ordered samples after the component reported itself initialized,
// the lifecycle markers, and the highest RAM peak seen.
type MemorySeries struct {
	Samples   []Sample
	Markers   []LifecycleMarker
	PeakRAMKB int64
	PeakTime  time.Time
	InitTime  time.Time
}
