package parser

import (
	"strings"

	"github.com/hhe-bench/hheperf/internal/models"
)

// lifecyclePhrases are the initialisation events the measurement writers
// emit, one set per component.
var lifecyclePhrases = []string{
	"Client Initialisation Keys_Params Start",
	"Client Initialisation Keys_Params End",
	"Client Initialisation ZeroMQ Start",
	"Client Initialisation ZeroMQ End",
	"Server Initialisation Keys_Params Start",
	"Server Initialisation Keys_Params End",
	"Server Initialisation ZeroMQ Start",
	"Server Initialisation ZeroMQ End",
	"TTP Initialisation Keys_Params Start",
	"TTP Initialisation Keys_Params End",
	"TTP Initialisation ZeroMQ Start",
	"TTP Initialisation ZeroMQ End",
}

// LifecycleKind maps a payload onto its lifecycle marker kind. The empty
// kind means the line is not a lifecycle event.
func LifecycleKind(payload string) models.MarkerKind {
	for _, phrase := range lifecyclePhrases {
		if !strings.Contains(payload, phrase) {
			continue
		}
		switch {
		case strings.Contains(phrase, "Keys_Params"):
			return models.MarkerKeysParams
		case strings.Contains(phrase, "ZeroMQ Start"):
			return models.MarkerZeroMQStart
		case strings.Contains(phrase, "ZeroMQ End"):
			return models.MarkerZeroMQEnd
		}
	}
	return ""
}

// IsInitialized reports whether a payload marks the component as fully
// initialized. Only the first such line sets a run's initialization time.
func IsInitialized(payload string) bool {
	return strings.Contains(strings.ToLower(payload), "initialized")
}

// BatchToggle reports whether a payload switches batch mode and, if so, the
// new state. The flag stays in effect until the next toggle.
func BatchToggle(payload string) (state, toggled bool) {
	switch {
	case strings.Contains(payload, "Start Batch Processing") || strings.Contains(payload, "Batch Start"):
		return true, true
	case strings.Contains(payload, "End Batch Processing") || strings.Contains(payload, "Batch End"):
		return false, true
	}
	return false, false
}

// IsStart and IsEnd classify operation boundary events.
func IsStart(payload string) bool { return strings.Contains(payload, " Start") }

func IsEnd(payload string) bool { return strings.Contains(payload, " End") }

// OperationName strips the Start/End suffix, and any " : "-delimited
// argument suffix, from an event payload.
func OperationName(payload string) string {
	name := payload
	if i := strings.Index(name, " Start"); i >= 0 {
		name = name[:i]
	} else if i := strings.Index(name, " End"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if i := strings.Index(name, " : "); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}

// Categorize maps an operation name onto its reporting category. Matching is
// a case-insensitive keyword test, first match wins; names matching no
// keyword are their own category.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "encryption") || strings.Contains(lower, "kreyvium"):
		return "Encryption"
	case strings.Contains(lower, "decryption"):
		return "Decryption"
	case strings.Contains(lower, "transciphering"):
		return "Transciphering"
	case strings.Contains(lower, "batch transmission"):
		return "Batch Transmission"
	case strings.Contains(lower, "batch"):
		return "Batch"
	case strings.Contains(lower, "integer"):
		return "Integer"
	case strings.Contains(lower, "initialized"):
		return "Initialization"
	default:
		return name
	}
}
