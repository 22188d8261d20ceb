package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hhe-bench/hheperf/internal/models"
)

// TimeLogData is the result of scanning one time log.
type TimeLogData struct {
	Spans    []models.Span
	InitTime time.Time
}

// ParseTimeLog scans a time log and correlates its operation spans. Lines
// without the timestamp prefix are skipped; End events without a matching
// open span are dropped.
func ParseTimeLog(r io.Reader) (*TimeLogData, error) {
	tracker := newSpanTracker()
	data := &TimeLogData{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ts, payload, ok := SplitEventLine(line)
		if !ok {
			continue
		}

		switch {
		case IsInitialized(payload):
			if data.InitTime.IsZero() {
				data.InitTime = ts
			}
		case IsStart(payload):
			tracker.Start(OperationName(payload)).StartTime = ts
		case IsEnd(payload):
			if s := tracker.End(OperationName(payload)); s != nil {
				s.EndTime = ts
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan time log: %w", err)
	}

	data.Spans = tracker.Closed()
	return data, nil
}

// ParseTimeLogFile opens and scans a time log file.
func ParseTimeLogFile(path string) (*TimeLogData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open time log: %w", err)
	}
	defer f.Close()
	return ParseTimeLog(f)
}
