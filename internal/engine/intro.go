package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
)

// FlagStore is the key-value capability the yearly intro needs.
// fyne.Preferences satisfies it directly; store.FileFlags backs headless mode.
type FlagStore interface {
	Bool(key string) bool
	SetBool(key string, value bool)
}

// MonthDay is a recurring calendar date without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// DefaultBirthday is used when no birthday source is configured.
var DefaultBirthday = MonthDay{Month: time.December, Day: config.DefaultBirthdayDay}

// String renders --MM-DD, the vCard form of a yearless date.
func (md MonthDay) String() string {
	return fmt.Sprintf(config.FormatMonthDay, int(md.Month), md.Day)
}

// IntroKey is the store key for the given year, so the flag resets annually.
func IntroKey(year int) string {
	return fmt.Sprintf(config.FormatIntroKey, year)
}

// IsBirthday compares the local calendar date of today with md.
func IsBirthday(today time.Time, md MonthDay) bool {
	_, m, d := today.Date()
	return m == md.Month && d == md.Day
}

// ShouldShowIntro is the whole once-per-year decision.
func ShouldShowIntro(today time.Time, md MonthDay, seen bool) bool {
	return IsBirthday(today, md) && !seen
}

// Intro tracks whether this year's birthday intro has been played.
type Intro struct {
	Store    FlagStore
	Birthday MonthDay
}

// NewIntro returns an Intro for md backed by store.
func NewIntro(store FlagStore, md MonthDay) *Intro {
	return &Intro{Store: store, Birthday: md}
}

// Seen reads this year's flag.
func (in *Intro) Seen(today time.Time) bool {
	return in.Store.Bool(IntroKey(today.Year()))
}

// Pending reports whether the intro should play now.
func (in *Intro) Pending(today time.Time) bool {
	return ShouldShowIntro(today, in.Birthday, in.Seen(today))
}

// Complete records that the intro has played this year.
func (in *Intro) Complete(today time.Time) {
	key := IntroKey(today.Year())
	in.Store.SetBool(key, true)
	slog.Info(config.MsgIntroComplete,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyKey, key)
}

// GoldenMeteors reports whether the post-intro birthday decoration is on:
// it is the birthday and the intro has already been seen.
func (in *Intro) GoldenMeteors(today time.Time) bool {
	return IsBirthday(today, in.Birthday) && in.Seen(today)
}

// MemoryFlags is an in-process FlagStore.
type MemoryFlags map[string]bool

// Bool returns the stored value, false when absent.
func (m MemoryFlags) Bool(key string) bool {
	return m[key]
}

// SetBool stores value under key.
func (m MemoryFlags) SetBool(key string, value bool) {
	m[key] = value
}
