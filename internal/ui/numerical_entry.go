package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits, typed or pasted.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops anything that is not 0-9.
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut strips non-digits from pasted text before inserting it.
func (e *NumericalEntry) TypedShortcut(s fyne.Shortcut) {
	paste, ok := s.(*fyne.ShortcutPaste)
	if !ok {
		e.Entry.TypedShortcut(s)
		return
	}
	if paste.Clipboard == nil {
		return
	}

	for _, r := range onlyDigits(paste.Clipboard.Content()) {
		e.Entry.TypedRune(r)
	}
}

// Value parses the current text. ok is false for empty or oversized input.
func (e *NumericalEntry) Value() (int, bool) {
	if e.Text == "" {
		return 0, false
	}
	v, err := strconv.Atoi(e.Text)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Keyboard shows a numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
