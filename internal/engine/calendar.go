package engine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-geminids/internal/astro"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/lunar"
)

// BuildCalendar renders an iCalendar feed with the activity window and the peak of
// `years` consecutive showers, starting with the one CurrentGeminidInfo(now) targets.
func BuildCalendar(now time.Time, years int, advisor *lunar.Advisor) ([]byte, error) {
	if years < 1 {
		years = 1
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	first := astro.CurrentGeminidInfo(now).Year
	for y := first; y < first+years; y++ {
		w := astro.WindowFor(y)
		moon := advisor.Info(w.Peak, y)

		for _, e := range windowEvents(w, moon) {
			e.Props.Set(dtStamp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// windowEvents builds the span event and the peak event for one year.
func windowEvents(w astro.Window, moon lunar.Info) []*ical.Event {
	description := fmt.Sprintf(config.FormatEventDescription, moon.Description, w.Year, moon.Advice)

	span := ical.NewEvent()
	span.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, config.UIDKindWindow, w.Year, config.ICalDomain))
	span.Props.SetText(config.PropSummary, config.EventSummaryWindow)
	span.Props.SetText(config.PropDescription, description)
	setDateTime(span, config.PropDTStart, w.Start)
	setDateTime(span, config.PropDTEnd, w.End)

	peak := ical.NewEvent()
	peak.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, config.UIDKindPeak, w.Year, config.ICalDomain))
	peak.Props.SetText(config.PropSummary, config.EventSummaryPeak)
	peak.Props.SetText(config.PropDescription, description)
	setDateTime(peak, config.PropDTStart, w.Peak)
	setDateTime(peak, config.PropDTEnd, w.Peak.Add(config.PeakEventLength))
	addAlarm(peak, config.PeakReminderTrigger, config.EventSummaryPeak)

	return []*ical.Event{span, peak}
}

func setDateTime(e *ical.Event, name string, t time.Time) {
	p := ical.NewProp(name)
	p.SetDateTime(t.UTC())
	e.Props.Set(p)
}

// addAlarm appends a DISPLAY alarm to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponentAlarm)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set the raw value so no VALUE=TEXT parameter is emitted.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
