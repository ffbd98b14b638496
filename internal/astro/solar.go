package astro

import (
	"math"
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
)

// Low-precision solar position model (J2000 mean elements).
// Accurate to roughly 10-15 minutes in the timing of a given longitude.
const (
	julianDayUnixEpoch = 2440587.5
	julianDayJ2000     = 2451545.0
	millisPerDay       = 86400000.0

	meanLongitudeAt2000 = 280.460
	meanLongitudeRate   = 0.9856474
	meanAnomalyAt2000   = 357.528
	meanAnomalyRate     = 0.9856003
	centerTerm1         = 1.915
	centerTerm2         = 0.020

	fullCircle = 360.0

	// bisectIterations halves the search bracket to well below one second.
	bisectIterations = 30
)

// JulianDay converts an instant to a Julian Day number at millisecond resolution.
func JulianDay(t time.Time) float64 {
	return float64(t.UnixMilli())/millisPerDay + julianDayUnixEpoch
}

// SolarLongitude returns the Sun's apparent ecliptic longitude in degrees, in [0, 360).
func SolarLongitude(t time.Time) float64 {
	n := JulianDay(t) - julianDayJ2000

	l := normalizeDegrees(meanLongitudeAt2000 + meanLongitudeRate*n)
	g := normalizeDegrees(meanAnomalyAt2000 + meanAnomalyRate*n)

	lambda := l + centerTerm1*math.Sin(radians(g)) + centerTerm2*math.Sin(radians(2*g))
	return normalizeDegrees(lambda)
}

// InstantAtLongitude finds the instant in December of the given year at which the
// solar longitude crosses target.
//
// The search brackets Dec 1 00:00 UTC to Dec 25 00:00 UTC and assumes the longitude
// increases monotonically through it (no 0/360 wrap). If the crossing lies outside
// the bracket, the result converges to one of its edges.
func InstantAtLongitude(year int, target float64) time.Time {
	lo := time.Date(year, time.December, config.SearchStartDay, 0, 0, 0, 0, time.UTC).UnixMilli()
	hi := time.Date(year, time.December, config.SearchEndDay, 0, 0, 0, 0, time.UTC).UnixMilli()

	for i := 0; i < bisectIterations; i++ {
		mid := lo + (hi-lo)/2
		if SolarLongitude(time.UnixMilli(mid)) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return time.UnixMilli(lo).UTC()
}

// normalizeDegrees reduces an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, fullCircle)
	if deg < 0 {
		deg += fullCircle
	}
	// math.Mod can round a tiny negative up to exactly 360.
	if deg >= fullCircle {
		deg = 0
	}
	return deg
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
