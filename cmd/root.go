package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hheperf",
	Short: "HHE benchmark log analyzer",
	Long: `A command line tool for analyzing the time and memory measurement logs
written by the client, server and TTP processes of an HHE protocol run.
Produces per-operation performance reports and memory-over-time graphs.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("time-dir", "", "Directory containing time measurement logs (overrides HHEPERF_TIME_DIR)")
	rootCmd.PersistentFlags().String("memory-dir", "", "Directory containing memory measurement logs (overrides HHEPERF_MEMORY_DIR)")
	viper.BindPFlag("time_dir", rootCmd.PersistentFlags().Lookup("time-dir"))
	viper.BindPFlag("memory_dir", rootCmd.PersistentFlags().Lookup("memory-dir"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("HHEPERF")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("time_dir", "data_time")
	viper.SetDefault("memory_dir", "data_memory")
	viper.SetDefault("output_dir", "data_analysed")
	viper.SetDefault("graph_dir", "data_graphs")
	viper.SetDefault("pi_type", "3b")
	viper.SetDefault("format", "text")
}
