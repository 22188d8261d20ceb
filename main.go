package main

import (
	"os"

	"github.com/hhe-bench/hheperf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
