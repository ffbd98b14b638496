package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
)

// ShowIntroWindow plays the birthday greeting. Closing the window by any means
// marks this year's intro as seen.
func (app *GeminidsApp) ShowIntroWindow() {
	if app.introWindow != nil {
		app.introWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgIntroShow, config.LogKeyComponent, config.CompUI)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinIntro))
	app.introWindow = w

	greeting := widget.NewLabelWithStyle(app.GetMsg(config.TKeyIntroGreeting),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	greeting.SizeName = theme.SizeNameHeadingText

	body := widget.NewLabel(app.GetMsg(config.TKeyIntroBody))
	body.Wrapping = fyne.TextWrapWord
	body.Alignment = fyne.TextAlignCenter

	quote := widget.NewLabelWithStyle(engine.PickQuote(true, nil),
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	quote.Wrapping = fyne.TextWrapWord

	btn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnContinue), theme.ConfirmIcon(), func() {
		w.Close()
	})
	btn.Importance = widget.HighImportance

	w.SetContent(container.NewPadded(container.NewVBox(greeting, body, quote, btn)))
	w.Resize(fyne.NewSize(config.IntroWinWidth, config.IntroWinHeight))
	w.SetFixedSize(true)
	w.SetOnClosed(func() {
		app.introWindow = nil
		app.completeIntro()
	})
	w.CenterOnScreen()
	w.Show()
}

// completeIntro records the intro and redraws so the golden decoration appears.
func (app *GeminidsApp) completeIntro() {
	now := app.Clock.Now()

	app.stateMut.Lock()
	app.Intro.Complete(now)
	app.stateMut.Unlock()

	if snap, ok := app.Snapshot(); ok {
		app.updateTray(snap, now)
		app.updateCountdownView(snap, now)
	}
}
