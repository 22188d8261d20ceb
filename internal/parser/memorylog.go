package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hhe-bench/hheperf/internal/models"
)

// MemoryLogData is the span-level view of one memory log.
type MemoryLogData struct {
	Spans          []models.Span
	Initialization *models.MemorySnapshot
}

// ParseMemoryLog scans a memory log for operation spans. Value lines follow
// their event line; a snapshot belongs to the most recent event and is
// dispatched once its RAM reading arrives. SWAP and RAM Peak readings that
// precede the RAM reading are folded into the same snapshot.
func ParseMemoryLog(r io.Reader) (*MemoryLogData, error) {
	tracker := newSpanTracker()
	data := &MemoryLogData{}

	var (
		event     string
		haveEvent bool
		snapshot  models.MemorySnapshot
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if _, payload, ok := SplitEventLine(line); ok {
			event = payload
			haveEvent = true
			snapshot = models.MemorySnapshot{}
			continue
		}
		if !haveEvent {
			continue
		}

		switch {
		case strings.Contains(line, "SWAP:"):
			if v, ok := extractKB(line, swapRe); ok {
				snapshot.SwapKB = v
			}
		case strings.Contains(line, "RAM Peak:"):
			if v, ok := extractKB(line, ramPeakRe); ok {
				snapshot.RAMPeakKB = v
			}
		case strings.Contains(line, "RAM:"):
			v, ok := extractKB(line, ramRe)
			if !ok {
				break
			}
			snapshot.RAMKB = v
			snap := snapshot

			switch {
			case IsInitialized(event):
				if data.Initialization == nil {
					data.Initialization = &snap
				}
			case IsStart(event):
				tracker.Start(OperationName(event)).StartMemory = &snap
			case IsEnd(event):
				if s := tracker.End(OperationName(event)); s != nil {
					s.EndMemory = &snap
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan memory log: %w", err)
	}

	data.Spans = tracker.Closed()
	return data, nil
}

// ParseMemoryLogFile opens and scans a memory log file.
func ParseMemoryLogFile(path string) (*MemoryLogData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory log: %w", err)
	}
	defer f.Close()
	return ParseMemoryLog(f)
}
