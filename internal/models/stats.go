package models

// CategoryStats summarizes the combined records of one operation category.
type CategoryStats struct {
	Count        int     `json:"count" yaml:"count"`
	AvgDuration  float64 `json:"avg_duration_seconds" yaml:"avg_duration_seconds"`
	AvgRAMDelta  float64 `json:"avg_ram_delta_kb" yaml:"avg_ram_delta_kb"`
	AvgSwapDelta float64 `json:"avg_swap_delta_kb" yaml:"avg_swap_delta_kb"`
	MaxRAMPeak   int64   `json:"max_ram_peak_kb" yaml:"max_ram_peak_kb"`
}

// CategoryOrder is the fixed section order of the text report. Categories
// outside this list never appear in the rendered report; they are still
// present in RunReport.Categories.
var CategoryOrder = []string{
	"Batch",
	"Batch Transmission",
	"Integer",
	"Encryption",
	"Transciphering",
	"Decryption",
}

// CategoryReport is one category section of a run report.
type CategoryReport struct {
	Category string        `json:"category" yaml:"category"`
	Stats    CategoryStats `json:"stats" yaml:"stats"`
}

// RunReport is the full analysis result for one component/variant run.
type RunReport struct {
	Component      Component        `json:"component" yaml:"component"`
	Variant        Variant          `json:"variant" yaml:"variant"`
	BatchNr        int              `json:"batch_nr" yaml:"batch_nr"`
	BatchSize      int              `json:"batch_size" yaml:"batch_size"`
	IntSize        int              `json:"int_size" yaml:"int_size"`
	SourceFile     string           `json:"source_file" yaml:"source_file"`
	Initialization *MemorySnapshot  `json:"initialization,omitempty" yaml:"initialization,omitempty"`
	Categories     []CategoryReport `json:"categories" yaml:"categories"`
}

// Key groups reports the same way run metadata is grouped.
func (r RunReport) Key() string {
	return string(r.Component) + "_" + string(r.Variant)
}
