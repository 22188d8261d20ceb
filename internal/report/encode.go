package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hhe-bench/hheperf/internal/models"
)

func EncodeJSON(w io.Writer, reports []models.RunReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func EncodeYAML(w io.Writer, reports []models.RunReport) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	return nil
}
