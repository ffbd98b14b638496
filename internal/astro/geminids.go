package astro

import (
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
)

// Status classifies "now" against the shower's activity window.
type Status string

const (
	// StatusWaiting means now precedes this year's start, or follows its end
	// (in which case the window of interest is next year's).
	StatusWaiting Status = "WAITING"

	// StatusActive means start <= now <= end.
	StatusActive Status = "ACTIVE"
)

// Window holds the resolved instants of one year's activity window.
type Window struct {
	Year  int       `json:"year"`
	Start time.Time `json:"start"`
	Peak  time.Time `json:"peak"`
	End   time.Time `json:"end"`
}

// Info is the derived state for a given instant. It is recomputed on demand.
type Info struct {
	Status     Status    `json:"status"`
	TargetDate time.Time `json:"targetDate"`
	PeakDate   time.Time `json:"peakDate"`
	Year       int       `json:"year"`
}

// WindowFor inverts the solar longitude thresholds for the given year.
func WindowFor(year int) Window {
	return Window{
		Year:  year,
		Start: InstantAtLongitude(year, config.SolarLongitudeStart),
		Peak:  InstantAtLongitude(year, config.SolarLongitudePeak),
		End:   InstantAtLongitude(year, config.SolarLongitudeEnd),
	}
}

// Contains reports whether t falls inside the window, both bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// CurrentGeminidInfo resolves the shower state for now.
// Before the window it counts down to the start, inside it to the end, and after it
// rolls over to next year's start.
func CurrentGeminidInfo(now time.Time) Info {
	year := now.UTC().Year()

	start := InstantAtLongitude(year, config.SolarLongitudeStart)
	end := InstantAtLongitude(year, config.SolarLongitudeEnd)
	peak := InstantAtLongitude(year, config.SolarLongitudePeak)

	switch {
	case now.Before(start):
		return Info{Status: StatusWaiting, TargetDate: start, PeakDate: peak, Year: year}
	case !now.After(end):
		return Info{Status: StatusActive, TargetDate: end, PeakDate: peak, Year: year}
	}

	next := year + 1
	return Info{
		Status:     StatusWaiting,
		TargetDate: InstantAtLongitude(next, config.SolarLongitudeStart),
		PeakDate:   InstantAtLongitude(next, config.SolarLongitudePeak),
		Year:       next,
	}
}

// Active is a convenience for Status == StatusActive.
func (i Info) Active() bool {
	return i.Status == StatusActive
}
