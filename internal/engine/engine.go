package engine

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/tartampluch/go-geminids/internal/astro"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/lunar"
)

// Snapshot is everything the presentation layer renders for one instant.
type Snapshot struct {
	GeneratedAt time.Time  `json:"generatedAt"`
	Geminid     astro.Info `json:"geminid"`
	Moon        lunar.Info `json:"moon"`
	Remaining   Countdown  `json:"remaining"`
	Birthday    bool       `json:"birthday"`
	Quote       string     `json:"quote"`
}

// Generator assembles snapshots and calendar feeds.
type Generator struct {
	Clock    Clock         // Interface for time mocking.
	Advisor  *lunar.Advisor
	Birthday MonthDay
	Rand     *rand.Rand // Quote selection; nil uses the global source.

	// CalendarYears is how many consecutive showers the ICS feed lists.
	CalendarYears int
}

// NewGenerator wires a Generator with the real clock, SunCalc and the default birthday.
func NewGenerator() *Generator {
	return &Generator{
		Clock:         RealClock{},
		Advisor:       lunar.NewAdvisor(lunar.SunCalc{}),
		Birthday:      DefaultBirthday,
		CalendarYears: config.DefaultCalendarYears,
	}
}

// Snapshot resolves the shower state at now and the moon advice for its peak.
func (g *Generator) Snapshot(now time.Time) Snapshot {
	info := astro.CurrentGeminidInfo(now)
	birthday := IsBirthday(now, g.Birthday)

	return Snapshot{
		GeneratedAt: now.UTC(),
		Geminid:     info,
		Moon:        g.Advisor.Info(info.PeakDate, info.Year),
		Remaining:   CountdownTo(now, info.TargetDate),
		Birthday:    birthday,
		Quote:       PickQuote(birthday, g.Rand),
	}
}

// Current is Snapshot at the generator's clock.
func (g *Generator) Current() Snapshot {
	start := time.Now()
	snap := g.Snapshot(g.Clock.Now())

	slog.Debug(config.MsgSnapshot,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyShower, snap.Geminid.Status,
		config.LogKeyYear, snap.Geminid.Year,
		config.LogKeyPhase, snap.Moon.Phase,
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return snap
}

// Calendar renders the ICS feed at the generator's clock.
func (g *Generator) Calendar() ([]byte, error) {
	return BuildCalendar(g.Clock.Now(), g.CalendarYears, g.Advisor)
}
