package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
)

// Countdown is the remaining time to a target broken into display units.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// CountdownTo computes the time left from now to target, floored per unit.
// Once the target is reached or passed every unit is zero.
func CountdownTo(now, target time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{}
	}

	total := int64(diff / time.Second)
	return Countdown{
		Days:    int(total / 86400),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}
}

// IsZero reports whether the countdown has elapsed.
func (c Countdown) IsZero() bool {
	return c == Countdown{}
}

// String renders DD:HH:MM:SS, each unit padded to two digits. Days may grow wider.
func (c Countdown) String() string {
	return fmt.Sprintf(config.FormatCountdown, c.Days, c.Hours, c.Minutes, c.Seconds)
}
