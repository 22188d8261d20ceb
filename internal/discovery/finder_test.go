package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hhe-bench/hheperf/internal/models"
)

const (
	clientOld = "2024-03-14_09-00-00_HHE_BatchNr:4_BatchSize:10_IntSize:16_client_HHE.txt"
	clientNew = "2024-03-15_10-00-00_HHE_BatchNr:4_BatchSize:10_IntSize:16_client_HHE.txt"
	serverHE  = "2024-03-15_10-00-00_HE_BatchNr:2_BatchSize:5_IntSize:32_server_HE.txt"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     models.RunMetadata
		wantOK   bool
	}{
		{
			name:     "hybrid client",
			filename: clientNew,
			want: models.RunMetadata{
				Timestamp: "2024-03-15_10-00-00",
				Variant:   models.VariantHybrid,
				BatchNr:   4, BatchSize: 10, IntSize: 16,
				Component: models.ComponentClient,
				Filename:  clientNew,
			},
			wantOK: true,
		},
		{
			name:     "plain server",
			filename: serverHE,
			want: models.RunMetadata{
				Timestamp: "2024-03-15_10-00-00",
				Variant:   models.VariantPlain,
				BatchNr:   2, BatchSize: 5, IntSize: 32,
				Component: models.ComponentServer,
				Filename:  serverHE,
			},
			wantOK: true,
		},
		{
			name:     "unrelated file",
			filename: "notes.txt",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFilename(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("metadata = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindPairsPicksNewestPerComponent(t *testing.T) {
	timeDir := t.TempDir()
	memoryDir := t.TempDir()

	for _, name := range []string{clientOld, clientNew, serverHE} {
		writeFile(t, timeDir, name)
		writeFile(t, memoryDir, name)
	}

	pairs, err := FindPairs(timeDir, memoryDir)
	if err != nil {
		t.Fatalf("FindPairs: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}

	client, ok := pairs["client_HHE"]
	if !ok {
		t.Fatal("client_HHE pair missing")
	}
	if client.Meta.Filename != clientNew {
		t.Errorf("client pair = %q, want newest %q", client.Meta.Filename, clientNew)
	}
	if client.TimePath != filepath.Join(timeDir, clientNew) {
		t.Errorf("TimePath = %q", client.TimePath)
	}
}

func TestFindPairsSkipsUnpairedTimeLogs(t *testing.T) {
	timeDir := t.TempDir()
	memoryDir := t.TempDir()

	writeFile(t, timeDir, clientNew)
	// No memory counterpart.

	pairs, err := FindPairs(timeDir, memoryDir)
	if err != nil {
		t.Fatalf("FindPairs: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0", len(pairs))
	}
}

func TestFindLatest(t *testing.T) {
	memoryDir := t.TempDir()
	writeFile(t, memoryDir, clientOld)
	writeFile(t, memoryDir, clientNew)

	runs, err := FindLatest(memoryDir)
	if err != nil {
		t.Fatalf("FindLatest: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs["client_HHE"].Meta.Filename != clientNew {
		t.Errorf("latest = %q, want %q", runs["client_HHE"].Meta.Filename, clientNew)
	}
}

func TestFindPairsMissingDirectory(t *testing.T) {
	if _, err := FindPairs(filepath.Join(t.TempDir(), "absent"), t.TempDir()); err == nil {
		t.Error("expected error for missing time directory")
	}
}

func TestSortedKeys(t *testing.T) {
	runs := map[string]Run{"ttp_HHE": {}, "client_HE": {}, "server_HHE": {}}
	got := SortedKeys(runs)
	want := []string{"client_HE", "server_HHE", "ttp_HHE"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedKeys = %v, want %v", got, want)
		}
	}
}
