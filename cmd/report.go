package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hhe-bench/hheperf/internal/analysis"
	"github.com/hhe-bench/hheperf/internal/config"
	"github.com/hhe-bench/hheperf/internal/discovery"
	"github.com/hhe-bench/hheperf/internal/models"
	"github.com/hhe-bench/hheperf/internal/parser"
	"github.com/hhe-bench/hheperf/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a performance report",
	Long: `Parses the newest time/memory log pair per component and variant and
writes a per-operation performance report`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("output-dir", "", "Directory to write the report to")
	reportCmd.Flags().String("format", "", "Report format (text/json/yaml)")
	reportCmd.Flags().Bool("stdout", false, "Print the report instead of writing a file")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	// Parse flags
	if outputDir, _ := cmd.Flags().GetString("output-dir"); outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}
	toStdout, _ := cmd.Flags().GetBool("stdout")

	if err := cfg.Validate(); err != nil {
		return err
	}

	pairs, err := discovery.FindPairs(cfg.TimeDir, cfg.MemoryDir)
	if err != nil {
		return fmt.Errorf("failed to discover log pairs: %w", err)
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no matching time/memory log pairs found in %s and %s", cfg.TimeDir, cfg.MemoryDir)
	}
	fmt.Printf("Found components: %d\n", len(pairs))

	var reports []models.RunReport
	for _, key := range discovery.SortedKeys(pairs) {
		run := pairs[key]
		fmt.Printf("\nAnalyzing: %s | %s\n", key, run.Meta.Timestamp)

		timeData, err := parser.ParseTimeLogFile(run.TimePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", key, err)
			continue
		}
		memData, err := parser.ParseMemoryLogFile(run.MemoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", key, err)
			continue
		}

		fmt.Printf("  Found %d time operations\n", len(timeData.Spans))
		fmt.Printf("  Found %d memory operations\n", len(memData.Spans))

		reports = append(reports, analysis.BuildRunReport(run.Meta, timeData, memData))
	}
	if len(reports) == 0 {
		return fmt.Errorf("no run produced usable data")
	}

	if toStdout {
		return writeReport(os.Stdout, reports, cfg.Format)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	name := fmt.Sprintf("analysis_%s.%s", time.Now().Format("20060102_150405"), formatExtension(cfg.Format))
	path := filepath.Join(cfg.OutputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := writeReport(f, reports, cfg.Format); err != nil {
		return err
	}

	fmt.Printf("\nAnalysis completed!\n")
	fmt.Printf("Report saved to: %s\n", path)
	return nil
}

func writeReport(w io.Writer, reports []models.RunReport, format string) error {
	switch format {
	case "json":
		return report.EncodeJSON(w, reports)
	case "yaml":
		return report.EncodeYAML(w, reports)
	default:
		_, err := io.WriteString(w, report.Render(reports))
		return err
	}
}

func formatExtension(format string) string {
	if format == "text" {
		return "txt"
	}
	return format
}
