// Package main implements the gatebench-suite binary, a configurable
// driver for every task variant.
//
// Configuration precedence, lowest to highest: defaults, --config file,
// .env file, GATEBENCH_* environment, command line flags.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gatebench/gatebench/internal/app"
	"github.com/gatebench/gatebench/internal/config"
	"github.com/gatebench/gatebench/internal/observability"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

var (
	configFile string
	envFile    string
	variants   string
	size       int
	stride     int
	threshold  int
	passes     int
	input      int
	format     string
	metrics    bool
	quiet      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gatebench-suite",
		Short:   "Measure gated task dispatch across task representations",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Example: `  gatebench-suite
  gatebench-suite --variants v1,v2,v3 --format json
  gatebench-suite --config suite.yaml --metrics`,
		SilenceUsage: true,
		RunE:         runSuite,
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	f.StringVar(&envFile, "env-file", ".env", "Path to a .env file with GATEBENCH_* variables")
	f.StringVar(&variants, "variants", "", "Comma separated variants to run (v1, v2, v3)")
	f.IntVar(&size, "size", 0, "Population size")
	f.IntVar(&stride, "stride", 0, "Gate every index divisible by stride")
	f.IntVar(&threshold, "threshold", 0, "Gate threshold")
	f.IntVar(&passes, "passes", 0, "Passes per variant")
	f.IntVar(&input, "input", 0, "Input passed to every tick")
	f.StringVar(&format, "format", "", "Report format: text, json")
	f.BoolVar(&metrics, "metrics", false, "Append Prometheus text metrics to the report")
	f.BoolVarP(&quiet, "quiet", "q", false, "Suppress progress logging")

	return cmd
}

func runSuite(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "gatebench-suite: ", log.LstdFlags)
	if quiet {
		logger.SetOutput(io.Discard)
	}
	printBanner(logger, cfg)

	opts := []app.Option{app.WithLogger(logger)}
	var m *observability.Metrics
	if cfg.Output.Metrics {
		m = observability.NewMetrics(prometheus.NewRegistry())
		opts = append(opts, app.WithMetrics(m))
	}

	application, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep, err := application.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.FormatJSON:
		err = rep.WriteJSON(out)
	default:
		err = rep.WriteText(out)
	}
	if err != nil {
		return err
	}

	if m != nil {
		return m.WriteText(out)
	}
	return nil
}

// loadConfig loads configuration from file, .env, environment and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	// A missing .env file is not an error.
	_ = godotenv.Load(envFile)
	config.LoadFromEnv(cfg)

	// Command line flags (highest priority)
	flags := cmd.Flags()
	if flags.Changed("variants") {
		cfg.Variants = config.SplitList(variants)
	}
	if flags.Changed("size") {
		cfg.Population.Size = size
	}
	if flags.Changed("stride") {
		cfg.Population.Stride = stride
	}
	if flags.Changed("threshold") {
		cfg.Population.Threshold = threshold
	}
	if flags.Changed("passes") {
		cfg.Run.Passes = passes
	}
	if flags.Changed("input") {
		cfg.Run.Input = input
	}
	if flags.Changed("format") {
		cfg.Output.Format = config.Format(format)
	}
	if flags.Changed("metrics") {
		cfg.Output.Metrics = metrics
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printBanner logs the effective configuration.
func printBanner(logger *log.Logger, cfg *config.Config) {
	logger.Printf("Configuration:")
	logger.Printf("  Variants:   %v", cfg.Variants)
	logger.Printf("  Population: %d tasks, gate %d on every %d", cfg.Population.Size, cfg.Population.Threshold, cfg.Population.Stride)
	logger.Printf("  Passes:     %d (input %d)", cfg.Run.Passes, cfg.Run.Input)
	logger.Printf("  Format:     %s", cfg.Output.Format)
}
