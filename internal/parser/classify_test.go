package parser

import (
	"testing"

	"github.com/hhe-bench/hheperf/internal/models"
)

func TestOperationName(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "start event", payload: "Client Encryption Start", want: "Client Encryption"},
		{name: "end event", payload: "Client Encryption End", want: "Client Encryption"},
		{name: "separator suffix stripped", payload: "Batch Transmission Start : 17", want: "Batch Transmission"},
		{name: "separator inside name", payload: "Integer 3 : 42 Start", want: "Integer 3"},
		{name: "no boundary marker", payload: "Server ready", want: "Server ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OperationName(tt.payload); got != tt.want {
				t.Errorf("OperationName(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want string
	}{
		{name: "encryption keyword", op: "Client Encryption", want: "Encryption"},
		{name: "kreyvium counts as encryption", op: "Kreyvium Keystream", want: "Encryption"},
		{name: "decryption keyword", op: "Result Decryption", want: "Decryption"},
		{name: "transciphering keyword", op: "Server Transciphering", want: "Transciphering"},
		{name: "batch transmission beats batch", op: "Batch Transmission", want: "Batch Transmission"},
		{name: "plain batch", op: "Batch 4", want: "Batch"},
		{name: "integer keyword", op: "Integer 12", want: "Integer"},
		{name: "case insensitive", op: "BATCH processing", want: "Batch"},
		{name: "unknown name is its own category", op: "Handshake", want: "Handshake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.op); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.op, got, tt.want)
			}
		})
	}
}

func TestLifecycleKind(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    models.MarkerKind
	}{
		{name: "client keys params start", payload: "Client Initialisation Keys_Params Start", want: models.MarkerKeysParams},
		{name: "server keys params end", payload: "Server Initialisation Keys_Params End", want: models.MarkerKeysParams},
		{name: "ttp zeromq start", payload: "TTP Initialisation ZeroMQ Start", want: models.MarkerZeroMQStart},
		{name: "client zeromq end", payload: "Client Initialisation ZeroMQ End", want: models.MarkerZeroMQEnd},
		{name: "ordinary operation", payload: "Client Encryption Start", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LifecycleKind(tt.payload); got != tt.want {
				t.Errorf("LifecycleKind(%q) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestBatchToggle(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantState   bool
		wantToggled bool
	}{
		{name: "start batch processing", payload: "Start Batch Processing", wantState: true, wantToggled: true},
		{name: "batch start", payload: "Batch 2 Batch Start", wantState: true, wantToggled: true},
		{name: "end batch processing", payload: "End Batch Processing", wantState: false, wantToggled: true},
		{name: "batch end", payload: "Batch End", wantState: false, wantToggled: true},
		{name: "unrelated", payload: "Client Encryption Start", wantToggled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, toggled := BatchToggle(tt.payload)
			if toggled != tt.wantToggled {
				t.Fatalf("toggled = %v, want %v", toggled, tt.wantToggled)
			}
			if toggled && state != tt.wantState {
				t.Errorf("state = %v, want %v", state, tt.wantState)
			}
		})
	}
}
