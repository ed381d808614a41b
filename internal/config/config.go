// Package config provides the configuration of a gatebench suite run.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gberrors "github.com/gatebench/gatebench/internal/errors"
	"github.com/gatebench/gatebench/internal/population"
	"github.com/gatebench/gatebench/pkg/types"
	"gopkg.in/yaml.v3"
)

// Format is the report output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds the configuration of a suite run.
type Config struct {
	// Population is the generation rule shared by every variant
	Population population.Rule `json:"population" yaml:"population"`

	// Run configures the benchmark runner
	Run RunConfig `json:"run" yaml:"run"`

	// Variants lists the variants to measure, in report order
	Variants []string `json:"variants" yaml:"variants"`

	// Output configures reporting
	Output OutputConfig `json:"output" yaml:"output"`
}

// RunConfig holds benchmark runner configuration.
type RunConfig struct {
	// Passes is the number of full passes per variant
	Passes int `json:"passes" yaml:"passes"`

	// Input is the input passed to every tick
	Input int `json:"input" yaml:"input"`
}

// OutputConfig holds report configuration.
type OutputConfig struct {
	// Format is the report format: text, json
	Format Format `json:"format" yaml:"format"`

	// Metrics appends a Prometheus text dump to the report
	Metrics bool `json:"metrics" yaml:"metrics"`
}

// DefaultConfig returns the default benchmark configuration:
// V1 against V2 over a million tasks, 1000 passes, input 0.
func DefaultConfig() *Config {
	return &Config{
		Population: population.DefaultRule(),
		Run: RunConfig{
			Passes: 1000,
			Input:  0,
		},
		Variants: []string{string(types.VariantV1), string(types.VariantV2)},
		Output: OutputConfig{
			Format:  FormatText,
			Metrics: false,
		},
	}
}

// ParsedVariants returns the configured variants in order.
func (c *Config) ParsedVariants() ([]types.Variant, error) {
	variants := make([]types.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := types.ParseVariant(name)
		if err != nil {
			return nil, gberrors.NewValidationError(gberrors.CodeUnknownVariant, err.Error()).
				WithDetails(map[string]interface{}{"variant": name})
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Population.Validate(); err != nil {
		return gberrors.NewValidationError(gberrors.CodeInvalidPopulation, err.Error())
	}

	if c.Run.Passes <= 0 {
		return gberrors.NewValidationError(gberrors.CodeInvalidPasses,
			fmt.Sprintf("run.passes must be positive, got %d", c.Run.Passes))
	}

	if len(c.Variants) == 0 {
		return gberrors.NewValidationError(gberrors.CodeNoVariants, "at least one variant is required")
	}
	if _, err := c.ParsedVariants(); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
		// Valid formats
	default:
		return gberrors.NewValidationError(gberrors.CodeUnsupportedFormat,
			fmt.Sprintf("invalid output format: %s (must be text or json)", c.Output.Format))
	}

	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gberrors.NewConfigError(gberrors.CodeReadFailed, "failed to read config file", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, gberrors.NewConfigError(gberrors.CodeParseFailed, "failed to parse YAML config", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, gberrors.NewConfigError(gberrors.CodeParseFailed, "failed to parse JSON config", err)
		}
	default:
		return nil, gberrors.NewConfigError(gberrors.CodeParseFailed,
			fmt.Sprintf("unsupported config file format: %s", ext), nil)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the GATEBENCH_ prefix; malformed numbers are
// ignored.
func LoadFromEnv(cfg *Config) {
	// Population configuration
	if v := os.Getenv("GATEBENCH_POPULATION_SIZE"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Population.Size)
	}
	if v := os.Getenv("GATEBENCH_POPULATION_STRIDE"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Population.Stride)
	}
	if v := os.Getenv("GATEBENCH_POPULATION_THRESHOLD"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Population.Threshold)
	}

	// Run configuration
	if v := os.Getenv("GATEBENCH_PASSES"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Run.Passes)
	}
	if v := os.Getenv("GATEBENCH_INPUT"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Run.Input)
	}

	if v := os.Getenv("GATEBENCH_VARIANTS"); v != "" {
		cfg.Variants = SplitList(v)
	}

	// Output configuration
	if v := os.Getenv("GATEBENCH_FORMAT"); v != "" {
		cfg.Output.Format = Format(strings.ToLower(v))
	}
	if v := os.Getenv("GATEBENCH_METRICS"); v != "" {
		cfg.Output.Metrics = v == "true" || v == "1"
	}
}

// SplitList splits a comma separated list, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
