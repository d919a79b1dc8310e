// Command bhctl is a small command line client for the catalog API.
package main

import (
	"os"

	"blackhole/internal/config"
)

func main() {
	config.LoadEnvFiles()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
