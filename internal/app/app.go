// Package app wires configuration, population building, the benchmark
// runner, metrics and reporting into a single run.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gatebench/gatebench/internal/bench"
	"github.com/gatebench/gatebench/internal/config"
	gberrors "github.com/gatebench/gatebench/internal/errors"
	"github.com/gatebench/gatebench/internal/observability"
	"github.com/gatebench/gatebench/internal/population"
	"github.com/gatebench/gatebench/internal/report"
	"github.com/gatebench/gatebench/internal/task"
	"github.com/gatebench/gatebench/pkg/types"
)

// App runs the configured variants one after another.
type App struct {
	cfg      *config.Config
	variants []types.Variant
	runner   *bench.Runner
	metrics  *observability.Metrics
	logger   *log.Logger
	now      func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the progress logger. Defaults to the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithMetrics records every completed run on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *App) { a.metrics = m }
}

// WithClock replaces the wall clock used for pass timing and timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates an App with the given configuration.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	variants, err := cfg.ParsedVariants()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &App{
		cfg:      cfg,
		variants: variants,
		logger:   log.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.runner = bench.NewRunner(cfg.Run.Passes).
		WithInput(cfg.Run.Input).
		WithClock(a.now)

	return a, nil
}

// Run measures every configured variant in order. Cancellation is honoured
// between variants only; a run in progress always completes.
func (a *App) Run(ctx context.Context) (*report.Report, error) {
	rep := report.New(a.cfg.Population, a.cfg.Run.Passes, a.cfg.Run.Input, a.now())

	for _, v := range a.variants {
		if err := ctx.Err(); err != nil {
			return rep, gberrors.Wrap(gberrors.ErrCategoryInternal, gberrors.CodeCancelled,
				fmt.Sprintf("run cancelled before %s", v), err)
		}

		res, err := a.measure(v)
		if err != nil {
			return rep, err
		}
		rep.Add(res)

		if a.metrics != nil {
			a.metrics.RecordResult(res, a.cfg.Population.Size)
		}
		a.logger.Printf("%s: %d passes, mean %.3f ms (min %.3f, max %.3f)",
			v, len(res.Samples), res.Mean(), res.Min(), res.Max())
	}

	return rep, nil
}

func (a *App) measure(v types.Variant) (*bench.Result, error) {
	switch v {
	case types.VariantV1:
		return measurePopulation(a, v, population.BuildV1), nil
	case types.VariantV2:
		return measurePopulation(a, v, population.BuildV2), nil
	case types.VariantV3:
		return measurePopulation(a, v, population.BuildV3), nil
	default:
		return nil, gberrors.NewInternalError(fmt.Sprintf("no builder for variant %s", v), nil)
	}
}

// measurePopulation builds a population outside the timed region and runs it.
func measurePopulation[T task.Task](a *App, v types.Variant, build func(population.Rule) *population.Population[T]) *bench.Result {
	start := a.now()
	p := build(a.cfg.Population)
	a.logger.Printf("%s: built %d tasks (%d gated) in %v",
		v, p.Len(), a.cfg.Population.GatedCount(), a.now().Sub(start))

	return bench.Run(a.runner, p)
}
