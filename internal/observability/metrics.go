// Package observability exports benchmark results as Prometheus metrics.
//
// Samples are recorded after a run completes, never from inside a timed
// pass, so instrumentation does not perturb the measurement.
package observability

import (
	"io"

	"github.com/gatebench/gatebench/internal/bench"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const metricsNamespace = "gatebench"

// Metrics holds the Prometheus collectors for benchmark runs.
type Metrics struct {
	// PassDurationMs observes every pass duration in milliseconds.
	// Labels: variant
	PassDurationMs *prometheus.HistogramVec

	// PassesTotal counts measured passes.
	// Labels: variant
	PassesTotal *prometheus.CounterVec

	// MeanPassMs is the mean pass duration of the latest run.
	// Labels: variant
	MeanPassMs *prometheus.GaugeVec

	// PopulationSize is the number of tasks driven per pass.
	// Labels: variant
	PopulationSize *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PassDurationMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "pass_duration_ms",
			Help:      "Wall-clock duration of one full pass over a population, in milliseconds.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 12),
		}, []string{"variant"}),
		PassesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "passes_total",
			Help:      "Number of measured passes.",
		}, []string{"variant"}),
		MeanPassMs: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "mean_pass_ms",
			Help:      "Mean pass duration of the latest run, in milliseconds.",
		}, []string{"variant"}),
		PopulationSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "population_size",
			Help:      "Number of tasks ticked per pass.",
		}, []string{"variant"}),
		gatherer: reg,
	}
}

// RecordResult records every sample of a completed run.
func (m *Metrics) RecordResult(res *bench.Result, populationSize int) {
	variant := res.Variant.String()

	hist := m.PassDurationMs.WithLabelValues(variant)
	for _, s := range res.Samples {
		hist.Observe(s)
	}
	m.PassesTotal.WithLabelValues(variant).Add(float64(len(res.Samples)))
	m.MeanPassMs.WithLabelValues(variant).Set(res.Mean())
	m.PopulationSize.WithLabelValues(variant).Set(float64(populationSize))
}

// WriteText writes the gathered metrics in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
