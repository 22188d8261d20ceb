package models

// Component identifies which protocol process wrote a measurement log.
type Component string

const (
	ComponentClient Component = "client"
	ComponentServer Component = "server"
	ComponentTTP    Component = "ttp"
)

// Variant identifies the protocol mode a run was executed in.
type Variant string

const (
	VariantHybrid Variant = "HHE"
	VariantPlain  Variant = "HE"
)

// Label returns the variant name used in graph titles.
func (v Variant) Label() string {
	if v == VariantHybrid {
		return "Hybrid"
	}
	return "Plain"
}

// RunMetadata carries the run parameters encoded in a measurement filename.
type RunMetadata struct {
	Component Component `json:"component" yaml:"component"`
	Variant   Variant   `json:"variant" yaml:"variant"`
	Timestamp string    `json:"timestamp" yaml:"timestamp"`
	BatchNr   int       `json:"batch_nr" yaml:"batch_nr"`
	BatchSize int       `json:"batch_size" yaml:"batch_size"`
	IntSize   int       `json:"int_size" yaml:"int_size"`
	Filename  string    `json:"filename" yaml:"filename"`
}

// Key groups runs of the same component and variant.
func (m RunMetadata) Key() string {
	return string(m.Component) + "_" + string(m.Variant)
}
