package scheduler

import (
	"sync"

	"github.com/tartampluch/go-geminids/internal/astro"
)

// Transition is a change of shower status or target year between two refreshes.
type Transition struct {
	From astro.Info
	To   astro.Info
}

// Opened reports whether the activity window has just begun.
func (t Transition) Opened() bool {
	return t.To.Status == astro.StatusActive && t.From.Status != astro.StatusActive
}

// Closed reports whether the window has just ended and the target moved on.
func (t Transition) Closed() bool {
	return t.From.Status == astro.StatusActive && t.To.Status == astro.StatusWaiting
}

// Watcher remembers the last observed Info. The zero value is ready to use.
type Watcher struct {
	mu   sync.Mutex
	last *astro.Info
}

// Observe records info and reports a transition when status or year differ from
// the previous observation. The first observation never counts as a transition.
func (w *Watcher) Observe(info astro.Info) (Transition, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.last
	w.last = &info

	if prev == nil {
		return Transition{}, false
	}
	if prev.Status == info.Status && prev.Year == info.Year {
		return Transition{}, false
	}
	return Transition{From: *prev, To: info}, true
}

// Last returns the most recent observation, if any.
func (w *Watcher) Last() (astro.Info, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.last == nil {
		return astro.Info{}, false
	}
	return *w.last, true
}
