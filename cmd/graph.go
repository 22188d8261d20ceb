package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hhe-bench/hheperf/internal/config"
	"github.com/hhe-bench/hheperf/internal/discovery"
	"github.com/hhe-bench/hheperf/internal/graph"
	"github.com/hhe-bench/hheperf/internal/models"
	"github.com/hhe-bench/hheperf/internal/parser"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render memory usage graphs",
	Long: `Parses the newest memory log per component and variant and renders
memory-over-time graphs into a timestamped output directory`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("graph-dir", "", "Directory to write graphs to")
	graphCmd.Flags().String("pi-type", "", "Measurement hardware (3b/zero)")
	graphCmd.Flags().Bool("swap", false, "Additionally render SWAP graphs")
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	// Parse flags
	if graphDir, _ := cmd.Flags().GetString("graph-dir"); graphDir != "" {
		cfg.GraphDir = graphDir
	}
	if piType, _ := cmd.Flags().GetString("pi-type"); piType != "" {
		cfg.PiType = piType
	}
	withSwap, _ := cmd.Flags().GetBool("swap")

	if err := cfg.Validate(); err != nil {
		return err
	}

	runs, err := discovery.FindLatest(cfg.MemoryDir)
	if err != nil {
		return fmt.Errorf("failed to discover memory logs: %w", err)
	}
	if len(runs) == 0 {
		return fmt.Errorf("no memory logs found in %s", cfg.MemoryDir)
	}

	runDir := filepath.Join(cfg.GraphDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create graph directory: %w", err)
	}

	fmt.Printf("Pi Type: %s\n", cfg.PiType)
	fmt.Printf("Found %d components\n\n", len(runs))

	plotter := &graph.Plotter{PiType: cfg.PiType}
	rendered := 0

	for _, key := range discovery.SortedKeys(runs) {
		run := runs[key]
		fmt.Printf("Processing: %s (%s)\n", key, run.Meta.Timestamp)

		series, err := parser.ParseMemorySeriesFile(run.MemoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", key, err)
			continue
		}
		if len(series.Samples) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: no valid data in %s\n", run.Meta.Filename)
			continue
		}

		// The plain-variant client swaps heavily; it gets the stacked view.
		if run.Meta.Component == models.ComponentClient && run.Meta.Variant == models.VariantPlain {
			path := filepath.Join(runDir, key+"_stacked.png")
			if err := plotter.PlotStacked(series, run.Meta, path); err != nil {
				return err
			}
			fmt.Println("  Stacked RAM+SWAP graph")
		} else {
			path := filepath.Join(runDir, key+"_ram.png")
			if err := plotter.PlotRAM(series, run.Meta, path); err != nil {
				return err
			}
			fmt.Println("  RAM graph")
		}

		if withSwap {
			path := filepath.Join(runDir, key+"_swap.png")
			if err := plotter.PlotSwap(series, run.Meta, path); err != nil {
				return err
			}
			fmt.Println("  SWAP graph")
		}
		rendered++
	}
	if rendered == 0 {
		return fmt.Errorf("no run produced usable data")
	}

	fmt.Printf("\nComplete! Graphs saved to: %s\n", runDir)
	return nil
}
