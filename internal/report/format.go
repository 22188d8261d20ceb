package report

import "fmt"

// formatClock renders a duration in seconds as a coarse "(H h M m S s)"
// suffix for the precise value printed next to it.
func formatClock(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("(%d h %d m %d s)", hours, minutes, secs)
}

// FormatMemory renders a kB quantity as megabytes with the raw value.
func FormatMemory(kb float64) string {
	return fmt.Sprintf("%.2f MB (%.0f kB)", kb/1024.0, kb)
}
