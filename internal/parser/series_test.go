package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/hhe-bench/hheperf/internal/models"
)

func TestParseMemorySeriesMarkerConsumption(t *testing.T) {
	// A lifecycle event arms exactly one marker, consumed by the next RAM
	// reading. The second RAM reading has no armed marker and produces none.
	log := strings.Join([]string{
		"2024-03-15 10:00:00.000000 : Client fully initialized : RAM: 512 kB",
		"2024-03-15 10:00:01.000000 : Client Initialisation Keys_Params End",
		"2024-03-15 10:00:02.000000 : SWAP: 64 kB",
		"2024-03-15 10:00:02.000000 : RAM: 2048 kB",
		"2024-03-15 10:00:03.000000 : RAM: 3072 kB",
	}, "\n")

	series, err := ParseMemorySeries(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ParseMemorySeries: %v", err)
	}

	if len(series.Markers) != 1 {
		t.Fatalf("got %d markers, want 1", len(series.Markers))
	}
	marker := series.Markers[0]
	if marker.Kind != models.MarkerKeysParams {
		t.Errorf("marker kind = %q, want %q", marker.Kind, models.MarkerKeysParams)
	}
	if marker.RAMMB != 2.0 {
		t.Errorf("marker RAM = %v MB, want 2.0", marker.RAMMB)
	}
	if marker.SwapKB != 64 {
		t.Errorf("marker SWAP = %d kB, want 64", marker.SwapKB)
	}
}

func TestParseMemorySeriesPeakMonotonicity(t *testing.T) {
	// The recorded peak is the strictly greatest value, stamped with the
	// timestamp of its first occurrence.
	log := strings.Join([]string{
		"2024-03-15 10:00:01.000000 : RAM Peak: 100 kB",
		"2024-03-15 10:00:02.000000 : RAM Peak: 80 kB",
		"2024-03-15 10:00:03.000000 : RAM Peak: 150 kB",
		"2024-03-15 10:00:04.000000 : RAM Peak: 150 kB",
		"2024-03-15 10:00:05.000000 : RAM Peak: 140 kB",
	}, "\n")

	series, err := ParseMemorySeries(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ParseMemorySeries: %v", err)
	}

	if series.PeakRAMKB != 150 {
		t.Errorf("PeakRAMKB = %d, want 150", series.PeakRAMKB)
	}
	want := time.Date(2024, 3, 15, 10, 0, 3, 0, time.UTC)
	if !series.PeakTime.Equal(want) {
		t.Errorf("PeakTime = %v, want first occurrence %v", series.PeakTime, want)
	}
}

func TestParseMemorySeriesDropsPreInitSamples(t *testing.T) {
	log := strings.Join([]string{
		"2024-03-15 09:59:58.000000 : RAM: 100 kB",
		"2024-03-15 10:00:00.000000 : Client fully initialized : RAM: 200 kB",
		"2024-03-15 10:00:01.000000 : RAM: 300 kB",
		"2024-03-15 10:00:02.000000 : SWAP: 50 kB",
		"2024-03-15 10:00:03.000000 : RAM: 400 kB",
	}, "\n")

	series, err := ParseMemorySeries(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ParseMemorySeries: %v", err)
	}

	// The pre-init sample, the sample at the init timestamp itself, and the
	// RAM-less sample are all dropped.
	if len(series.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(series.Samples))
	}
	if series.Samples[0].RAMKB != 300 || series.Samples[1].RAMKB != 400 {
		t.Errorf("samples = [%d, %d] kB, want [300, 400]", series.Samples[0].RAMKB, series.Samples[1].RAMKB)
	}
}

func TestParseMemorySeriesBatchFlag(t *testing.T) {
	log := strings.Join([]string{
		"2024-03-15 10:00:01.000000 : RAM: 100 kB",
		"2024-03-15 10:00:02.000000 : Start Batch Processing",
		"2024-03-15 10:00:03.000000 : RAM: 200 kB",
		"2024-03-15 10:00:04.000000 : End Batch Processing",
		"2024-03-15 10:00:05.000000 : RAM: 300 kB",
	}, "\n")

	series, err := ParseMemorySeries(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ParseMemorySeries: %v", err)
	}
	if len(series.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(series.Samples))
	}

	want := []bool{false, true, false}
	for i, s := range series.Samples {
		if s.InBatch != want[i] {
			t.Errorf("sample %d InBatch = %v, want %v", i, s.InBatch, want[i])
		}
	}
}

func TestParseMemorySeriesMergesSameTimestamp(t *testing.T) {
	// Readings sharing a timestamp merge into one sample, last value wins.
	log := strings.Join([]string{
		"2024-03-15 10:00:01.000000 : RAM: 100 kB",
		"2024-03-15 10:00:01.000000 : SWAP: 10 kB",
		"2024-03-15 10:00:01.000000 : RAM: 150 kB",
	}, "\n")

	series, err := ParseMemorySeries(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ParseMemorySeries: %v", err)
	}
	if len(series.Samples) != 1 {
		t.Fatalf("got %d samples, want 1", len(series.Samples))
	}
	s := series.Samples[0]
	if s.RAMKB != 150 || s.SwapKB != 10 {
		t.Errorf("sample = RAM %d, SWAP %d; want RAM 150, SWAP 10", s.RAMKB, s.SwapKB)
	}
}
