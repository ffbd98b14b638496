package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-geminids/internal/config"
)

// TestJulianDay_Epochs anchors the conversion on well-known reference instants.
func TestJulianDay_Epochs(t *testing.T) {
	assert.InDelta(t, 2440587.5, JulianDay(time.Unix(0, 0)), 1e-9, "Unix epoch")
	assert.InDelta(t, 2451545.0, JulianDay(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)), 1e-9, "J2000.0")
}

// TestJulianDay_IgnoresZone ensures the same instant yields the same JD in any location.
func TestJulianDay_IgnoresZone(t *testing.T) {
	utc := time.Date(2025, 12, 14, 3, 0, 0, 0, time.UTC)
	tokyo := utc.In(time.FixedZone("JST", 9*60*60))
	assert.Equal(t, JulianDay(utc), JulianDay(tokyo))
}

// TestSolarLongitude_Range samples a wide span of instants, including pre-1970 and far future.
func TestSolarLongitude_Range(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		ts := start.Add(time.Duration(i) * 53 * 24 * time.Hour)
		lon := SolarLongitude(ts)
		require.GreaterOrEqual(t, lon, 0.0, "at %s", ts)
		require.Less(t, lon, 360.0, "at %s", ts)
	}
}

// TestSolarLongitude_Seasons checks the model against equinox/solstice longitudes.
func TestSolarLongitude_Seasons(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"March equinox 2024", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC), 0},
		{"June solstice 2024", time.Date(2024, 6, 20, 20, 51, 0, 0, time.UTC), 90},
		{"September equinox 2024", time.Date(2024, 9, 22, 12, 44, 0, 0, time.UTC), 180},
		{"December solstice 2024", time.Date(2024, 12, 21, 9, 20, 0, 0, time.UTC), 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolarLongitude(tt.at)
			diff := got - tt.want
			if diff > 180 {
				diff -= 360
			}
			// 0.02 deg is roughly half an hour of solar motion.
			assert.InDelta(t, 0, diff, 0.02, "longitude %f", got)
		})
	}
}

// TestSolarLongitude_MonotonicInDecember walks December in 10-minute steps.
func TestSolarLongitude_MonotonicInDecember(t *testing.T) {
	for _, year := range []int{1999, 2024, 2025, 2050} {
		prev := -1.0
		for ts := time.Date(year, 12, 1, 0, 0, 0, 0, time.UTC); ts.Month() == time.December; ts = ts.Add(10 * time.Minute) {
			lon := SolarLongitude(ts)
			require.Greater(t, lon, prev, "year %d at %s", year, ts)
			prev = lon
		}
	}
}

func TestInstantAtLongitude_KnownWindow2025(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   time.Time
	}{
		{"start", config.SolarLongitudeStart, time.Date(2025, 12, 13, 11, 20, 28, 565e6, time.UTC)},
		{"peak", config.SolarLongitudePeak, time.Date(2025, 12, 13, 23, 8, 27, 674e6, time.UTC)},
		{"end", config.SolarLongitudeEnd, time.Date(2025, 12, 14, 10, 56, 22, 391e6, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstantAtLongitude(2025, tt.target)
			assert.WithinDuration(t, tt.want, got, time.Second)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

// TestInstantAtLongitude_Ordering verifies start < peak < end for a range of years.
func TestInstantAtLongitude_Ordering(t *testing.T) {
	for year := 1950; year <= 2150; year += 7 {
		start := InstantAtLongitude(year, config.SolarLongitudeStart)
		peak := InstantAtLongitude(year, config.SolarLongitudePeak)
		end := InstantAtLongitude(year, config.SolarLongitudeEnd)

		assert.True(t, start.Before(peak), "year %d: start %s peak %s", year, start, peak)
		assert.True(t, peak.Before(end), "year %d: peak %s end %s", year, peak, end)
		assert.Equal(t, time.December, start.Month())
		assert.Equal(t, time.December, end.Month())
	}
}

// TestInstantAtLongitude_Precision checks the crossing is bracketed within a few milliseconds.
func TestInstantAtLongitude_Precision(t *testing.T) {
	got := InstantAtLongitude(2026, config.SolarLongitudePeak)

	assert.Less(t, SolarLongitude(got), config.SolarLongitudePeak)
	assert.GreaterOrEqual(t, SolarLongitude(got.Add(5*time.Millisecond)), config.SolarLongitudePeak)
}

// TestInstantAtLongitude_OutsideBracket documents the known limit: the result sticks to an edge.
func TestInstantAtLongitude_OutsideBracket(t *testing.T) {
	// Already passed on Dec 1: the lower bound never moves.
	early := InstantAtLongitude(2025, 200)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), early)

	// Not reached by Dec 25: the lower bound is pushed up to the end of the bracket.
	late := InstantAtLongitude(2025, 300)
	assert.WithinDuration(t, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), late, time.Second)
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-720, 0},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeDegrees(tt.in), 1e-9, "normalize(%v)", tt.in)
	}
}
