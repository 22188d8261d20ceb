package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhe-bench/hheperf/internal/config"
	"github.com/hhe-bench/hheperf/internal/discovery"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered measurement runs",
	Long:  "Lists the newest time/memory log pair per component and variant",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		return err
	}

	pairs, err := discovery.FindPairs(cfg.TimeDir, cfg.MemoryDir)
	if err != nil {
		return fmt.Errorf("failed to discover log pairs: %w", err)
	}
	if len(pairs) == 0 {
		fmt.Println("No matching time/memory log pairs found")
		return nil
	}

	for _, key := range discovery.SortedKeys(pairs) {
		meta := pairs[key].Meta
		fmt.Printf("%s\n", key)
		fmt.Printf("  Timestamp: %s\n", meta.Timestamp)
		fmt.Printf("  Batches: %d x %d | Integer size: %d bit\n", meta.BatchNr, meta.BatchSize, meta.IntSize)
		fmt.Printf("  File: %s\n", meta.Filename)
	}
	return nil
}
