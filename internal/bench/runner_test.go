package bench

import (
	"testing"
	"time"

	"github.com/gatebench/gatebench/internal/population"
	"github.com/gatebench/gatebench/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var smallRule = population.Rule{Size: 1000, Stride: 128, Threshold: 32}

// steppingClock returns a clock whose n-th pass (zero-based) lasts n+1 ms.
func steppingClock() func() time.Time {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		pass := calls / 2
		end := calls%2 == 1
		calls++
		if end {
			return base.Add(time.Duration(pass+1) * time.Millisecond)
		}
		return base
	}
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(DefaultPasses)
	assert.Equal(t, 1000, r.Passes())
	assert.Equal(t, 0, r.Input())
}

func TestNewRunner_NonPositivePassesPanics(t *testing.T) {
	assert.Panics(t, func() { NewRunner(0) })
	assert.Panics(t, func() { NewRunner(-3) })
}

func TestRun_ProducesOneSamplePerPass(t *testing.T) {
	r := NewRunner(DefaultPasses)
	res := Run(r, population.BuildV1(smallRule))

	require.Len(t, res.Samples, DefaultPasses)
	for i, s := range res.Samples {
		if s < 0 {
			t.Fatalf("sample %d is negative: %f", i, s)
		}
	}
	assert.Equal(t, types.VariantV1, res.Variant)

	var sum float64
	for _, s := range res.Samples {
		sum += s
	}
	assert.Equal(t, sum/float64(DefaultPasses), res.Mean())
}

func TestRun_TimesEachPassWithClock(t *testing.T) {
	r := NewRunner(4).WithClock(steppingClock())
	res := Run(r, population.BuildV2(smallRule))

	assert.Equal(t, []float64{1, 2, 3, 4}, res.Samples)
	assert.Equal(t, 2.5, res.Mean())
	assert.Equal(t, 1.0, res.Min())
	assert.Equal(t, 4.0, res.Max())
}

func TestRun_BackwardsClockClampsToZero(t *testing.T) {
	base := time.Now()
	calls := 0
	clock := func() time.Time {
		calls++
		if calls%2 == 0 {
			return base.Add(-time.Millisecond)
		}
		return base
	}

	res := Run(NewRunner(3).WithClock(clock), population.BuildV1(smallRule))
	assert.Equal(t, []float64{0, 0, 0}, res.Samples)
}

func TestRun_ChecksumIdenticalAcrossVariants(t *testing.T) {
	// Input 1: every ungated task yields 2, the gated task at position 0
	// yields 1, and gated tasks at positions >= 32 yield 0.
	want := 2*(smallRule.Size-smallRule.GatedCount()) + 1

	r := NewRunner(3).WithInput(1)
	assert.Equal(t, want, Run(r, population.BuildV1(smallRule)).Checksum)
	assert.Equal(t, want, Run(r, population.BuildV2(smallRule)).Checksum)
	assert.Equal(t, want, Run(r, population.BuildV3(smallRule)).Checksum)
}

func TestRun_ZeroInputChecksumIsZero(t *testing.T) {
	res := Run(NewRunner(2), population.BuildV3(smallRule))
	assert.Equal(t, 0, res.Checksum)
}

func TestAggregates(t *testing.T) {
	samples := []float64{3, 1, 4, 1, 5}
	assert.InDelta(t, 2.8, Mean(samples), 1e-9)
	assert.Equal(t, 1.0, Min(samples))
	assert.Equal(t, 5.0, Max(samples))

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
}
