package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/zalando/go-keyring"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect    *widget.Select
	modeSelect    *widget.Select
	urlEntry      *widget.Entry
	userEntry     *widget.Entry
	passEntry     *widget.Entry
	pathEntry     *widget.Entry
	entryInterval *NumericalEntry
	entryPort     *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog.
func (app *GeminidsApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenWindow,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyWindow, config.TKeyWinSettings)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	var refreshLayout func()
	onLayoutChange := func() {
		if refreshLayout != nil {
			refreshLayout()
		}
	}

	// --- General ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.entryInterval = NewNumericalEntry()
	sw.entryInterval.SetText(strconv.Itoa(int(app.refreshInterval().Seconds())))

	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	widInterval := container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblSeconds)), sw.entryInterval)
	itemInterval := widget.NewFormItem(app.GetMsg(config.TKeyLblRefresh), widInterval)
	itemInterval.HintText = app.GetMsg(config.TKeyHelpInterval)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "",
		widget.NewForm(itemLang, itemInterval, itemPort))

	// --- Birthday source ---
	sw.urlEntry = widget.NewEntry()
	sw.urlEntry.SetText(app.Preferences.String(config.PrefVCardURL))
	sw.urlEntry.PlaceHolder = config.PlaceholderURL

	sw.userEntry = widget.NewEntry()
	sw.userEntry.SetText(app.Preferences.String(config.PrefUsername))

	sw.passEntry = widget.NewPasswordEntry()
	if user := sw.userEntry.Text; user != "" {
		if pwd, err := keyring.Get(config.KeyringService, user); err == nil {
			sw.passEntry.SetText(pwd)
		}
	}

	sw.pathEntry = widget.NewEntry()
	sw.pathEntry.SetText(app.Preferences.String(config.PrefLocalPath))

	birthdayCard := app.buildBirthdayCard(w, sw, onLayoutChange)

	// --- Actions ---
	saveAction := func() {
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
		go app.applySettings()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		birthdayCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	refreshLayout = func() {
		paddedContent.Refresh()
		w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	}

	w.SetContent(paddedContent)
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })

	refreshLayout()
	w.Show()
}

// validatePort accepts a TCP port number.
func (app *GeminidsApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// modeLabels maps source modes to their localized names, in display order.
func (app *GeminidsApp) modeLabels() ([]string, map[string]string) {
	modes := []string{config.SourceModeNone, config.SourceModeWeb, config.SourceModeLocal}
	keys := map[string]string{
		config.SourceModeNone:  config.TKeyModeNone,
		config.SourceModeWeb:   config.TKeyModeWeb,
		config.SourceModeLocal: config.TKeyModeLocal,
	}

	labels := make([]string, 0, len(modes))
	byLabel := make(map[string]string, len(modes))
	for _, m := range modes {
		l := app.GetMsg(keys[m])
		labels = append(labels, l)
		byLabel[l] = m
	}
	return labels, byLabel
}

// buildBirthdayCard constructs the vCard source selection.
func (app *GeminidsApp) buildBirthdayCard(w fyne.Window, sw *settingsWidgets, onLayoutChange func()) *widget.Card {
	labels, byLabel := app.modeLabels()
	sw.modeSelect = widget.NewSelect(labels, nil)

	browseBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnBrowse), theme.FolderOpenIcon(), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				sw.pathEntry.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
		d.Show()
	})

	itemURL := widget.NewFormItem(app.GetMsg(config.TKeyLblURL), sw.urlEntry)
	itemURL.HintText = app.GetMsg(config.TKeyHelpURL)
	webForm := widget.NewForm(
		itemURL,
		widget.NewFormItem(app.GetMsg(config.TKeyLblUser), sw.userEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblPass), sw.passEntry),
	)
	localForm := container.NewBorder(nil, nil, nil, browseBtn, sw.pathEntry)

	applyVisibility := func(label string) {
		webForm.Hide()
		localForm.Hide()
		switch byLabel[label] {
		case config.SourceModeWeb:
			webForm.Show()
		case config.SourceModeLocal:
			localForm.Show()
		}
	}

	current := app.Preferences.String(config.PrefSourceMode)
	for l, m := range byLabel {
		if m == current {
			sw.modeSelect.SetSelected(l)
		}
	}
	if sw.modeSelect.Selected == "" {
		sw.modeSelect.SetSelected(labels[0])
	}
	applyVisibility(sw.modeSelect.Selected)

	sw.modeSelect.OnChanged = func(label string) {
		applyVisibility(label)
		if onLayoutChange != nil {
			onLayoutChange()
		}
	}

	help := widget.NewLabel(app.GetMsg(config.TKeyHelpBirthday))
	help.Wrapping = fyne.TextWrapWord
	help.Importance = widget.LowImportance

	return widget.NewCard(app.GetMsg(config.TKeyLblBirthday), "",
		container.NewVBox(sw.modeSelect, webForm, localForm, help))
}

// saveSettings persists the form and relocalizes the tray.
func (app *GeminidsApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSavePrefs, config.LogKeyComponent, config.CompUISet)

	_, byLabel := app.modeLabels()

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefSourceMode, byLabel[sw.modeSelect.Selected])
	app.Preferences.SetString(config.PrefVCardURL, sw.urlEntry.Text)
	app.Preferences.SetString(config.PrefUsername, sw.userEntry.Text)
	app.Preferences.SetString(config.PrefLocalPath, sw.pathEntry.Text)

	if sw.userEntry.Text != "" && sw.passEntry.Text != "" {
		if err := keyring.Set(config.KeyringService, sw.userEntry.Text, sw.passEntry.Text); err != nil {
			slog.Error(config.ErrKeyringSave,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUISet)
		}
	}

	// Empty or zero falls back to the default interval.
	if v, ok := sw.entryInterval.Value(); ok && v > 0 {
		app.Preferences.SetInt(config.PrefRefreshSec, v)
	} else {
		app.Preferences.SetInt(config.PrefRefreshSec, config.DefaultRefreshSec)
	}

	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)
	}

	app.UpdateLocalizer()
	app.RefreshTrayMenu()
}

// applySettings re-resolves the birthday and reschedules. Blocking.
func (app *GeminidsApp) applySettings() {
	app.applyBirthday()
	if err := app.Scheduler.SetRefreshInterval(app.refreshInterval()); err != nil {
		slog.Error(config.ErrScheduleJob,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUISet)
	}
	app.refreshNow(false)
}
