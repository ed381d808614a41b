// Package report renders benchmark results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gatebench/gatebench/internal/bench"
	gberrors "github.com/gatebench/gatebench/internal/errors"
	"github.com/gatebench/gatebench/internal/population"
	"github.com/google/uuid"
)

// VariantResult is the summary of one variant's run.
type VariantResult struct {
	Variant  string  `json:"variant"`
	MeanMs   float64 `json:"mean_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
	Passes   int     `json:"passes"`
	Checksum int     `json:"checksum"`
}

// Report is the outcome of a suite run.
type Report struct {
	RunID      string          `json:"run_id"`
	StartedAt  time.Time       `json:"started_at"`
	Population population.Rule `json:"population"`
	Passes     int             `json:"passes"`
	Input      int             `json:"input"`
	Results    []VariantResult `json:"results"`
}

// New creates an empty report stamped with a fresh run ID.
func New(rule population.Rule, passes, input int, startedAt time.Time) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		StartedAt:  startedAt.UTC(),
		Population: rule,
		Passes:     passes,
		Input:      input,
		Results:    []VariantResult{},
	}
}

// Add appends the summary of a run.
func (r *Report) Add(res *bench.Result) {
	r.Results = append(r.Results, VariantResult{
		Variant:  res.Variant.String(),
		MeanMs:   res.Mean(),
		MinMs:    res.Min(),
		MaxMs:    res.Max(),
		Passes:   len(res.Samples),
		Checksum: res.Checksum,
	})
}

// Line formats the one-line summary of a variant, e.g. "V1: 2.417 ms".
func Line(label string, meanMs float64) string {
	return fmt.Sprintf("%s: %.3f ms", label, meanMs)
}

// WriteText writes one line per variant, in run order.
func (r *Report) WriteText(w io.Writer) error {
	for _, vr := range r.Results {
		if _, err := fmt.Fprintln(w, Line(vr.Variant, vr.MeanMs)); err != nil {
			return gberrors.NewReportError("failed to write text report", err)
		}
	}
	return nil
}

// WriteJSON writes the full report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return gberrors.NewReportError("failed to write JSON report", err)
	}
	return nil
}
