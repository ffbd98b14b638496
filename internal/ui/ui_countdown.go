package ui

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
)

// goldColor tints the countdown on the birthday once the intro is done.
var goldColor = color.NRGBA{R: 0xFF, G: 0xC8, B: 0x3D, A: 0xFF}

const countdownTextSize = 42

// countdownView is the content of the countdown window.
type countdownView struct {
	status    *widget.Label
	countdown *canvas.Text
	caption   *widget.Label
	peak      *widget.Label
	moon      *widget.Label
	advice    *widget.Label
	quote     *widget.Label
}

func newCountdownView() *countdownView {
	v := &countdownView{
		status:    widget.NewLabel(""),
		countdown: canvas.NewText(engine.Countdown{}.String(), theme.Color(theme.ColorNameForeground)),
		caption:   widget.NewLabel(""),
		peak:      widget.NewLabel(""),
		moon:      widget.NewLabel(""),
		advice:    widget.NewLabel(""),
		quote:     widget.NewLabel(""),
	}
	v.status.Alignment = fyne.TextAlignCenter
	v.status.TextStyle = fyne.TextStyle{Bold: true}

	v.countdown.Alignment = fyne.TextAlignCenter
	v.countdown.TextSize = countdownTextSize
	v.countdown.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}

	v.caption.Alignment = fyne.TextAlignCenter
	v.advice.Wrapping = fyne.TextWrapWord
	v.quote.Wrapping = fyne.TextWrapWord
	v.quote.Alignment = fyne.TextAlignCenter
	v.quote.TextStyle = fyne.TextStyle{Italic: true}
	return v
}

func (v *countdownView) content() fyne.CanvasObject {
	return container.NewPadded(container.NewVBox(
		v.status,
		v.countdown,
		v.caption,
		widget.NewSeparator(),
		v.peak,
		v.moon,
		v.advice,
		widget.NewSeparator(),
		v.quote,
	))
}

// ShowCountdownWindow opens the countdown window, or focuses it if already open.
func (app *GeminidsApp) ShowCountdownWindow() {
	if app.countdownWindow != nil {
		app.countdownWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenWindow,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, config.TKeyWinCountdown)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinCountdown))
	app.countdownWindow = w
	app.countdown = newCountdownView()

	w.SetContent(app.countdown.content())
	w.Resize(fyne.NewSize(config.CountdownWinWidth, config.CountdownWinHeight))
	w.SetOnClosed(func() {
		app.countdownWindow = nil
		app.countdown = nil
	})

	if snap, ok := app.Snapshot(); ok {
		app.updateCountdownView(snap, app.Clock.Now())
	}
	w.Show()
}

// updateCountdownView redraws the window from snap. No-op while it is closed.
func (app *GeminidsApp) updateCountdownView(snap engine.Snapshot, now time.Time) {
	v := app.countdown
	if v == nil {
		return
	}

	info := snap.Geminid
	golden := app.goldenMeteors(now)
	remaining := engine.CountdownTo(now, info.TargetDate)

	v.status.SetText(app.statusLabel(info, golden))
	v.caption.SetText(app.countdownLabel(info, remaining))

	v.countdown.Text = remaining.String()
	if golden {
		v.countdown.Color = goldColor
	} else {
		v.countdown.Color = theme.Color(theme.ColorNameForeground)
	}
	v.countdown.Refresh()

	v.peak.SetText(app.peakLabel(info.PeakDate))
	v.moon.SetText(app.moonLabel(snap.Moon.Phase))
	v.advice.SetText(snap.Moon.Advice)
	v.quote.SetText(snap.Quote)
}
