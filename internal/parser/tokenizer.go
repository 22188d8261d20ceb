package parser

import (
	"regexp"
	"strconv"
	"time"
)

// TimestampLayout is the wall-clock format the measurement writers emit.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// parseLayout accepts shorter fractional parts as well; FormatTimestamp
// always renders the full six digits.
const parseLayout = "2006-01-02 15:04:05.999999"

var (
	eventLineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+) : (.+)$`)
	timestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d+`)

	ramRe     = regexp.MustCompile(`RAM: (\d+) kB`)
	swapRe    = regexp.MustCompile(`SWAP: (\d+) kB`)
	ramPeakRe = regexp.MustCompile(`RAM Peak: (\d+) kB`)
)

// SplitEventLine extracts the timestamp and event payload from a
// "TIMESTAMP : EVENT" line. ok is false for any other line shape; callers
// skip such lines silently.
func SplitEventLine(line string) (ts time.Time, payload string, ok bool) {
	m := eventLineRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, "", false
	}
	ts, err := time.Parse(parseLayout, m[1])
	if err != nil {
		return time.Time{}, "", false
	}
	return ts, m[2], true
}

// LeadingTimestamp extracts just the timestamp prefix of a line. Memory-log
// value lines are matched this way so the rest of the line stays available
// for reading markers.
func LeadingTimestamp(line string) (time.Time, bool) {
	m := timestampRe.FindString(line)
	if m == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(parseLayout, m)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// FormatTimestamp renders a timestamp the way the measurement writers do.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// extractKB pulls the integer out of value markers like "RAM: 1234 kB".
func extractKB(line string, re *regexp.Regexp) (int64, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
