package astro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-geminids/internal/astro"
)

func TestWindowFor_Ordering(t *testing.T) {
	w := astro.WindowFor(2024)

	assert.Equal(t, 2024, w.Year)
	assert.True(t, w.Start.Before(w.Peak))
	assert.True(t, w.Peak.Before(w.End))
	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.End.Add(time.Millisecond)))
}

// TestCurrentGeminidInfo_Transitions covers the four boundary instants of a window.
func TestCurrentGeminidInfo_Transitions(t *testing.T) {
	w := astro.WindowFor(2025)
	next := astro.WindowFor(2026)

	tests := []struct {
		name       string
		now        time.Time
		wantStatus astro.Status
		wantTarget time.Time
		wantPeak   time.Time
		wantYear   int
	}{
		{"just before start", w.Start.Add(-time.Millisecond), astro.StatusWaiting, w.Start, w.Peak, 2025},
		{"exactly at start", w.Start, astro.StatusActive, w.End, w.Peak, 2025},
		{"at peak", w.Peak, astro.StatusActive, w.End, w.Peak, 2025},
		{"exactly at end", w.End, astro.StatusActive, w.End, w.Peak, 2025},
		{"just after end", w.End.Add(time.Millisecond), astro.StatusWaiting, next.Start, next.Peak, 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := astro.CurrentGeminidInfo(tt.now)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantTarget, info.TargetDate)
			assert.Equal(t, tt.wantPeak, info.PeakDate)
			assert.Equal(t, tt.wantYear, info.Year)
		})
	}
}

func TestCurrentGeminidInfo_Idempotent(t *testing.T) {
	now := time.Date(2025, 10, 15, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, astro.CurrentGeminidInfo(now), astro.CurrentGeminidInfo(now))
}

func TestCurrentGeminidInfo_ActiveOnDecember14(t *testing.T) {
	tests := []time.Time{
		time.Date(2023, 12, 14, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 14, 6, 0, 0, 0, time.UTC),
	}
	for _, now := range tests {
		info := astro.CurrentGeminidInfo(now)
		assert.True(t, info.Active(), "expected ACTIVE at %s", now)
		assert.Equal(t, now.Year(), info.Year)
	}
}

func TestCurrentGeminidInfo_SummerWaitsForDecember(t *testing.T) {
	for _, year := range []int{2000, 2024, 2025, 2031} {
		now := time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC)
		info := astro.CurrentGeminidInfo(now)

		require.Equal(t, astro.StatusWaiting, info.Status)
		assert.Equal(t, year, info.TargetDate.Year())
		assert.Equal(t, time.December, info.TargetDate.Month())
		assert.Equal(t, year, info.Year)
		assert.True(t, info.TargetDate.Before(info.PeakDate))
	}
}

func TestCurrentGeminidInfo_LateDecemberRollsOver(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	info := astro.CurrentGeminidInfo(now)

	assert.Equal(t, astro.StatusWaiting, info.Status)
	assert.Equal(t, 2026, info.Year)
	assert.Equal(t, 2026, info.TargetDate.Year())
	assert.Equal(t, 2026, info.PeakDate.Year())
}

// TestCurrentGeminidInfo_AroundNewYear checks zones where the local and UTC years differ.
func TestCurrentGeminidInfo_AroundNewYear(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		// Jan 1 in Auckland is still Dec 31 in UTC.
		{"ahead of UTC", time.Date(2026, 1, 1, 5, 0, 0, 0, time.FixedZone("NZDT", 13*60*60))},
		// Dec 31 in New York is already Jan 1 in UTC.
		{"behind UTC", time.Date(2025, 12, 31, 22, 0, 0, 0, time.FixedZone("EST", -5*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := astro.CurrentGeminidInfo(tt.now)
			assert.Equal(t, astro.StatusWaiting, info.Status)
			assert.Equal(t, 2026, info.Year)
			assert.Equal(t, astro.WindowFor(2026).Start, info.TargetDate)
		})
	}
}
