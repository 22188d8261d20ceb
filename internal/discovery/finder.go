package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/hhe-bench/hheperf/internal/models"
)

// filenameRe matches the grammar of the measurement writers:
// TIMESTAMP_{HHE|HE}_BatchNr:<n>_BatchSize:<n>_IntSize:<n>_{client|server|ttp}_{HHE|HE}.txt
var filenameRe = regexp.MustCompile(
	`(\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2})_(HHE|HE)_BatchNr:(\d+)_BatchSize:(\d+)_IntSize:(\d+)_(client|server|ttp)_(HHE|HE)`)

// ParseFilename extracts run metadata from a measurement filename.
func ParseFilename(name string) (models.RunMetadata, bool) {
	m := filenameRe.FindStringSubmatch(name)
	if m == nil {
		return models.RunMetadata{}, false
	}
	batchNr, _ := strconv.Atoi(m[3])
	batchSize, _ := strconv.Atoi(m[4])
	intSize, _ := strconv.Atoi(m[5])
	return models.RunMetadata{
		Timestamp: m[1],
		Variant:   models.Variant(m[2]),
		BatchNr:   batchNr,
		BatchSize: batchSize,
		IntSize:   intSize,
		Component: models.Component(m[6]),
		Filename:  name,
	}, true
}

// Run points at the log files of one discovered run. TimePath is empty when
// the run was discovered from the memory directory alone.
type Run struct {
	Meta       models.RunMetadata
	TimePath   string
	MemoryPath string
}

// FindPairs returns the newest time/memory log pair per component/variant.
// A time log pairs with the identically named file in the memory directory;
// time logs without a counterpart are skipped.
func FindPairs(timeDir, memoryDir string) (map[string]Run, error) {
	entries, err := os.ReadDir(timeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read time log directory: %w", err)
	}

	pairs := make(map[string]Run)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		meta, ok := ParseFilename(e.Name())
		if !ok {
			continue
		}
		memoryPath := filepath.Join(memoryDir, e.Name())
		if _, err := os.Stat(memoryPath); err != nil {
			continue
		}
		if prev, ok := pairs[meta.Key()]; ok && prev.Meta.Timestamp >= meta.Timestamp {
			continue
		}
		pairs[meta.Key()] = Run{
			Meta:       meta,
			TimePath:   filepath.Join(timeDir, e.Name()),
			MemoryPath: memoryPath,
		}
	}
	return pairs, nil
}

// FindLatest returns the newest memory log per component/variant. This is
// the graph pipeline's input; it needs no time log.
func FindLatest(memoryDir string) (map[string]Run, error) {
	entries, err := os.ReadDir(memoryDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory log directory: %w", err)
	}

	runs := make(map[string]Run)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		meta, ok := ParseFilename(e.Name())
		if !ok {
			continue
		}
		if prev, ok := runs[meta.Key()]; ok && prev.Meta.Timestamp >= meta.Timestamp {
			continue
		}
		runs[meta.Key()] = Run{
			Meta:       meta,
			MemoryPath: filepath.Join(memoryDir, e.Name()),
		}
	}
	return runs, nil
}

// SortedKeys returns the run keys in stable reporting order.
func SortedKeys(runs map[string]Run) []string {
	keys := make([]string, 0, len(runs))
	for key := range runs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
