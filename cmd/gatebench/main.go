// Package main implements the gatebench binary.
// It measures the default comparison, V1 against V2 over a million tasks
// and 1000 passes, and prints one mean per variant on stdout. It takes no
// flags and reads no environment; progress is logged to stderr.
package main

import (
	"context"
	"log"
	"os"

	"github.com/gatebench/gatebench/internal/app"
	"github.com/gatebench/gatebench/internal/config"
)

func main() {
	logger := log.New(os.Stderr, "gatebench: ", log.LstdFlags)

	application, err := app.New(config.DefaultConfig(), app.WithLogger(logger))
	if err != nil {
		logger.Fatalf("Failed to create application: %v", err)
	}

	rep, err := application.Run(context.Background())
	if err != nil {
		logger.Fatalf("Benchmark failed: %v", err)
	}

	if err := rep.WriteText(os.Stdout); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
}
