package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Valid configuration values
var (
	validPiTypes = map[string]bool{
		"3b": true, "zero": true,
	}
	validFormats = map[string]bool{
		"text": true, "json": true, "yaml": true,
	}
)

type Config struct {
	TimeDir   string
	MemoryDir string
	OutputDir string
	GraphDir  string
	PiType    string
	Format    string
}

func New() *Config {
	return &Config{
		TimeDir:   viper.GetString("time_dir"),
		MemoryDir: viper.GetString("memory_dir"),
		OutputDir: viper.GetString("output_dir"),
		GraphDir:  viper.GetString("graph_dir"),
		PiType:    viper.GetString("pi_type"),
		Format:    viper.GetString("format"),
	}
}

func (c *Config) Validate() error {
	if c.TimeDir == "" {
		return fmt.Errorf("time log directory is required")
	}
	if c.MemoryDir == "" {
		return fmt.Errorf("memory log directory is required")
	}

	// Validate Pi type
	if !validPiTypes[c.PiType] {
		return fmt.Errorf("invalid pi type: %s (valid: 3b, zero)", c.PiType)
	}

	// Validate report format
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid report format: %s (valid: text, json, yaml)", c.Format)
	}

	return nil
}
