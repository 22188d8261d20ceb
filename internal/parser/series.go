package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hhe-bench/hheperf/internal/models"
)

// sampleAccum collects the readings of one timestamp while scanning. Fields
// overwrite on repeat, the peak keeps its maximum.
type sampleAccum struct {
	ram     int64
	haveRAM bool
	swap    int64
	peak    int64
	batch   bool
}

// ParseMemorySeries scans a memory log into the plottable measurement
// series. Series lines carry the timestamp prefix inline with their value
// markers, unlike the event/value split the span scanner handles.
//
// Scan state is deliberately local: the batch flag, the pending lifecycle
// marker and the peak tracker live in this one pass. A pending marker is
// consumed by the next RAM reading; at most one marker waits at a time.
func ParseMemorySeries(r io.Reader) (*models.MemorySeries, error) {
	series := &models.MemorySeries{}
	acc := make(map[time.Time]*sampleAccum)

	var (
		inBatch bool
		pending models.MarkerKind
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ts, ok := LeadingTimestamp(line)
		if !ok {
			continue
		}

		if series.InitTime.IsZero() && IsInitialized(line) {
			series.InitTime = ts
		}
		if kind := LifecycleKind(line); kind != "" {
			pending = kind
		}
		if state, toggled := BatchToggle(line); toggled {
			inBatch = state
		}

		a := acc[ts]
		if a == nil {
			a = &sampleAccum{}
			acc[ts] = a
		}
		a.batch = inBatch

		if strings.Contains(line, "RAM:") && !strings.Contains(line, "RAM Peak:") {
			if v, ok := extractKB(line, ramRe); ok {
				a.ram, a.haveRAM = v, true
				if pending != "" {
					series.Markers = append(series.Markers, models.LifecycleMarker{
						Kind:   pending,
						RAMMB:  float64(v) / 1024,
						SwapKB: a.swap,
					})
					pending = ""
				}
			}
		}
		if strings.Contains(line, "SWAP:") {
			if v, ok := extractKB(line, swapRe); ok {
				a.swap = v
			}
		}
		if strings.Contains(line, "RAM Peak:") {
			if v, ok := extractKB(line, ramPeakRe); ok {
				if v > a.peak {
					a.peak = v
				}
				// Strictly greater, so the recorded peak keeps the
				// timestamp of its first occurrence.
				if v > series.PeakRAMKB {
					series.PeakRAMKB = v
					series.PeakTime = ts
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan memory log: %w", err)
	}

	times := make([]time.Time, 0, len(acc))
	for ts := range acc {
		times = append(times, ts)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	for _, ts := range times {
		if !series.InitTime.IsZero() && !ts.After(series.InitTime) {
			continue
		}
		a := acc[ts]
		if !a.haveRAM {
			continue
		}
		series.Samples = append(series.Samples, models.Sample{
			Time:      ts,
			RAMKB:     a.ram,
			SwapKB:    a.swap,
			RAMPeakKB: a.peak,
			InBatch:   a.batch,
		})
	}
	return series, nil
}

// ParseMemorySeriesFile opens and scans a memory log file into its series.
func ParseMemorySeriesFile(path string) (*models.MemorySeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory log: %w", err)
	}
	defer f.Close()
	return ParseMemorySeries(f)
}
