// Exlog is a CLI tool for logging exercise sessions and charting progress.
package main

import (
	"os"

	"github.com/swamp-dev/exlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
