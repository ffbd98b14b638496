package lunar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// circularDelta is the shortest distance between two phase fractions on the unit circle.
func circularDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestSunCalc_KnownLunations(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		wantPhase float64
		wantKey   PhaseKey
	}{
		{"new moon 2023-01-21", time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC), 0.0, New},
		{"first quarter 2023-01-28", time.Date(2023, 1, 28, 15, 19, 0, 0, time.UTC), 0.25, FirstQuarter},
		{"full moon 2023-02-05", time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC), 0.5, Full},
		{"last quarter 2023-02-13", time.Date(2023, 2, 13, 16, 1, 0, 0, time.UTC), 0.75, LastQuarter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunCalc{}.Phase(tt.at)
			assert.Less(t, circularDelta(got, tt.wantPhase), 0.02, "phase %f", got)
			assert.Equal(t, tt.wantKey, Classify(got))
		})
	}
}

func TestSunCalc_GeminidPeaks(t *testing.T) {
	tests := []struct {
		name string
		peak time.Time
		want PhaseKey
	}{
		{"2023", time.Date(2023, 12, 14, 11, 29, 26, 0, time.UTC), WaxingCrescent},
		{"2024", time.Date(2024, 12, 13, 17, 18, 57, 0, time.UTC), WaxingGibbous},
		{"2025", time.Date(2025, 12, 13, 23, 8, 27, 0, time.UTC), WaningCrescent},
		{"2026", time.Date(2026, 12, 14, 4, 57, 58, 0, time.UTC), WaxingCrescent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(SunCalc{}.Phase(tt.peak)))
		})
	}
}

func TestSunCalc_Illumination(t *testing.T) {
	full := SunCalc{}.Illumination(time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC))
	assert.Greater(t, full.Fraction, 0.99)

	newMoon := SunCalc{}.Illumination(time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC))
	assert.Less(t, newMoon.Fraction, 0.01)
}

func TestProviders_Range(t *testing.T) {
	providers := map[string]PhaseProvider{"suncalc": SunCalc{}, "synodic": Synodic{}}
	start := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

	for name, p := range providers {
		for i := 0; i < 1500; i++ {
			ts := start.Add(time.Duration(i) * 37 * time.Hour)
			got := p.Phase(ts)
			require.GreaterOrEqual(t, got, 0.0, "%s at %s", name, ts)
			require.Less(t, got, 1.0, "%s at %s", name, ts)
		}
	}
}

// TestSynodic_AgreesWithSunCalc allows the mean model its eccentricity drift.
func TestSynodic_AgreesWithSunCalc(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 366; day += 3 {
		ts := start.AddDate(0, 0, day)
		assert.Less(t, circularDelta(Synodic{}.Phase(ts), SunCalc{}.Phase(ts)), 0.04, "at %s", ts)
	}
}

func TestIlluminatedPercent(t *testing.T) {
	assert.InDelta(t, 0, IlluminatedPercent(0), 1e-9)
	assert.InDelta(t, 50, IlluminatedPercent(0.25), 1e-9)
	assert.InDelta(t, 100, IlluminatedPercent(0.5), 1e-9)
}

func TestWrapUnit(t *testing.T) {
	assert.InDelta(t, 0.25, wrapUnit(1.25), 1e-12)
	assert.InDelta(t, 0.75, wrapUnit(-0.25), 1e-12)
	assert.Equal(t, 0.0, wrapUnit(1))
	assert.Equal(t, 0.0, wrapUnit(-1e-18))
}
