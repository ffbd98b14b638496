package lunar

import "time"

// PhaseKey is one of eight buckets partitioning the phase cycle.
type PhaseKey string

const (
	New            PhaseKey = "New"
	WaxingCrescent PhaseKey = "WaxingCrescent"
	FirstQuarter   PhaseKey = "FirstQuarter"
	WaxingGibbous  PhaseKey = "WaxingGibbous"
	Full           PhaseKey = "Full"
	WaningGibbous  PhaseKey = "WaningGibbous"
	LastQuarter    PhaseKey = "LastQuarter"
	WaningCrescent PhaseKey = "WaningCrescent"
)

// PhaseKeys lists the buckets in cycle order, starting at new moon.
var PhaseKeys = []PhaseKey{
	New, WaxingCrescent, FirstQuarter, WaxingGibbous,
	Full, WaningGibbous, LastQuarter, WaningCrescent,
}

// Info is the advice shown for a moon phase.
type Info struct {
	Phase       PhaseKey `json:"phase"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
}

// Advisor picks a moon phase description and a viewing tip for a date.
type Advisor struct {
	Provider PhaseProvider
}

// NewAdvisor returns an Advisor backed by p, or by SunCalc when p is nil.
func NewAdvisor(p PhaseProvider) *Advisor {
	if p == nil {
		p = SunCalc{}
	}
	return &Advisor{Provider: p}
}

// Info classifies the phase at date and selects the advice for year.
// The same (date, year) always yields the same result.
func (a *Advisor) Info(date time.Time, year int) Info {
	key := Classify(a.Provider.Phase(date))
	return Info{
		Phase:       key,
		Description: phaseNames[key],
		Advice:      AdviceFor(key, year),
	}
}

// Classify buckets a phase fraction. Bounds are inclusive-low, exclusive-high, with
// New wrapping across 0: [0.97, 1) and [0, 0.03).
func Classify(p float64) PhaseKey {
	switch {
	case p < 0.03 || p >= 0.97:
		return New
	case p < 0.22:
		return WaxingCrescent
	case p < 0.28:
		return FirstQuarter
	case p < 0.47:
		return WaxingGibbous
	case p < 0.53:
		return Full
	case p < 0.72:
		return WaningGibbous
	case p < 0.78:
		return LastQuarter
	default:
		return WaningCrescent
	}
}

// Description returns the fixed display name of a bucket.
func Description(key PhaseKey) string {
	return phaseNames[key]
}

// AdviceFor selects entry year mod len from the bucket's advice list.
// Negative years are folded into range so the index is always valid.
func AdviceFor(key PhaseKey, year int) string {
	list := phaseAdvice[key]
	if len(list) == 0 {
		return ""
	}
	i := year % len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i]
}
