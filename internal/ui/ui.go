package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-geminids/internal/astro"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
	"github.com/tartampluch/go-geminids/internal/lunar"
	"github.com/tartampluch/go-geminids/internal/notify"
	"github.com/tartampluch/go-geminids/internal/scheduler"
	"github.com/tartampluch/go-geminids/internal/server"
	"github.com/zalando/go-keyring"
)

//go:embed Icon.png
var appIconData []byte

// GeminidsApp encapsulates the UI state, preferences, and background logic.
type GeminidsApp struct {
	App         fyne.App
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server    *server.FeedServer
	Generator *engine.Generator
	Resolver  *engine.BirthdayResolver
	Scheduler *scheduler.Scheduler
	Announcer *notify.Announcer
	Intro     *engine.Intro
	Clock     engine.Clock // Injected clock for testability (e.g. mocking time travel)

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem    *fyne.MenuItem
	TrayCountdownItem *fyne.MenuItem
	TrayPeakItem      *fyne.MenuItem
	TrayMoonItem      *fyne.MenuItem
	TrayAdviceItem    *fyne.MenuItem
	TrayOpenItem      *fyne.MenuItem
	TrayRefreshItem   *fyne.MenuItem
	TraySettingsItem  *fyne.MenuItem

	SupportedLanguages []string

	// stateMut guards snapshot and the birthday held by Generator and Intro.
	stateMut sync.RWMutex
	snapshot engine.Snapshot
	hasSnap  bool

	settingsWindow  fyne.Window
	countdownWindow fyne.Window
	introWindow     fyne.Window
	countdown       *countdownView
}

// NewGeminidsApp constructs the application and wires dependencies.
func NewGeminidsApp(a fyne.App, ctx context.Context, srv *server.FeedServer, fetcher engine.VCardFetcher) *GeminidsApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &GeminidsApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Generator:          engine.NewGenerator(),
		Resolver:           &engine.BirthdayResolver{Fetcher: fetcher},
		Intro:              engine.NewIntro(a.Preferences(), engine.DefaultBirthday),
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
	app.Announcer = &notify.Announcer{Notifier: desktopNotifier{app: a}}
	app.Scheduler = scheduler.New(app.Clock, app.refreshInterval(), app.onRefresh, app.onTick)
	return app
}

// Run launches the application services and the main UI loop.
func (app *GeminidsApp) Run() {
	app.SetupI18n()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	go func() {
		// Resolved off the UI thread; the vCard may live on a slow server.
		app.applyBirthday()
		app.Scheduler.Clock = app.Clock
		if err := app.Scheduler.Start(app.Ctx); err != nil {
			slog.Error(config.ErrScheduleJob,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}()

	app.App.Run()
}

// setupTrayMenu constructs the system tray menu.
func (app *GeminidsApp) setupTrayMenu() {
	openCountdown := func() { app.ShowCountdownWindow() }

	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, openCountdown)
	app.TrayCountdownItem = fyne.NewMenuItem(engine.Countdown{}.String(), openCountdown)

	app.TrayPeakItem = fyne.NewMenuItem("", nil)
	app.TrayPeakItem.Disabled = true
	app.TrayMoonItem = fyne.NewMenuItem("", nil)
	app.TrayMoonItem.Disabled = true
	app.TrayAdviceItem = fyne.NewMenuItem("", nil)
	app.TrayAdviceItem.Disabled = true

	app.TrayOpenItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuCountdown), openCountdown)

	app.TrayRefreshItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), func() {
		go app.refreshNow(true)
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		app.TrayCountdownItem,
		fyne.NewMenuItemSeparator(),
		app.TrayPeakItem,
		app.TrayMoonItem,
		app.TrayAdviceItem,
		fyne.NewMenuItemSeparator(),
		app.TrayOpenItem,
		app.TrayRefreshItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}

	if snap, ok := app.Snapshot(); ok {
		app.updateTray(snap, app.Clock.Now())
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *GeminidsApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayOpenItem.Label = app.GetMsg(config.TKeyMenuCountdown)
	app.TrayRefreshItem.Label = app.GetMsg(config.TKeyMenuRefresh)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	if snap, ok := app.Snapshot(); ok {
		app.updateTray(snap, app.Clock.Now())
		return
	}
	app.Menu.Refresh()
}

// Snapshot returns the latest refresh result.
func (app *GeminidsApp) Snapshot() (engine.Snapshot, bool) {
	app.stateMut.RLock()
	defer app.stateMut.RUnlock()
	return app.snapshot, app.hasSnap
}

// refreshNow runs a refresh outside the schedule, from the tray or after saving settings.
func (app *GeminidsApp) refreshNow(manual bool) {
	slog.Info(config.MsgRefreshReq,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, manual)

	app.Scheduler.RefreshNow()

	if manual {
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifRefreshed)))
	}
}

// onRefresh recomputes the shower state, republishes the feed and updates the UI.
func (app *GeminidsApp) onRefresh(now time.Time) {
	app.stateMut.Lock()
	snap := app.Generator.Snapshot(now)
	app.snapshot = snap
	app.hasSnap = true
	introDue := app.Intro.Pending(now)
	app.stateMut.Unlock()

	if err := app.Server.Publish(app.Generator, snap); err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}

	app.Announcer.Handle(app.Ctx, snap, now)

	fyne.Do(func() {
		app.updateTray(snap, now)
		app.updateCountdownView(snap, now)
		if introDue {
			app.ShowIntroWindow()
		}
	})
}

// onTick advances the countdown. Reaching the target forces a refresh so the
// status flips without waiting for the next scheduled one.
func (app *GeminidsApp) onTick(now time.Time) {
	snap, ok := app.Snapshot()
	if !ok {
		return
	}
	if !now.Before(snap.Geminid.TargetDate) {
		app.onRefresh(now)
		return
	}

	fyne.Do(func() {
		app.updateCountdown(snap, now)
		app.updateCountdownView(snap, now)
	})
}

// updateTray rewrites every informational tray item from snap.
func (app *GeminidsApp) updateTray(snap engine.Snapshot, now time.Time) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}

	app.TrayStatusItem.Label = app.statusLabel(snap.Geminid, app.goldenMeteors(now))
	app.TrayCountdownItem.Label = app.countdownLabel(snap.Geminid, engine.CountdownTo(now, snap.Geminid.TargetDate))
	app.TrayPeakItem.Label = app.peakLabel(snap.Geminid.PeakDate)
	app.TrayMoonItem.Label = app.moonLabel(snap.Moon.Phase)
	app.TrayAdviceItem.Label = snap.Moon.Advice
	app.Menu.Refresh()
}

// updateCountdown touches only the countdown item; called every second.
func (app *GeminidsApp) updateCountdown(snap engine.Snapshot, now time.Time) {
	if app.Menu == nil || app.TrayCountdownItem == nil {
		return
	}
	app.TrayCountdownItem.Label = app.countdownLabel(snap.Geminid, engine.CountdownTo(now, snap.Geminid.TargetDate))
	app.Menu.Refresh()
}

// statusLabel is the headline: which shower and whether it is on.
func (app *GeminidsApp) statusLabel(info astro.Info, golden bool) string {
	key := config.TKeyStatusWaiting
	if info.Active() {
		key = config.TKeyStatusActive
	}
	label := app.GetMsgWith(key, map[string]any{config.TplYear: info.Year})
	if golden {
		label += " " + app.GetMsg(config.TKeyBirthdayBadge)
	}
	return label
}

func (app *GeminidsApp) countdownLabel(info astro.Info, c engine.Countdown) string {
	key := config.TKeyCountdownStart
	if info.Active() {
		key = config.TKeyCountdownEnd
	}
	return app.GetMsgWith(key, map[string]any{config.TplCountdown: c.String()})
}

func (app *GeminidsApp) peakLabel(peak time.Time) string {
	return app.GetMsgWith(config.TKeyPeak, map[string]any{
		config.TplDate: peak.Local().Format(app.dateTimeFormat()),
	})
}

func (app *GeminidsApp) moonLabel(phase lunar.PhaseKey) string {
	return app.GetMsgWith(config.TKeyMoon, map[string]any{config.TplPhase: app.PhaseName(phase)})
}

// goldenMeteors reports whether today is the birthday and the intro has been seen.
func (app *GeminidsApp) goldenMeteors(now time.Time) bool {
	app.stateMut.RLock()
	defer app.stateMut.RUnlock()
	return app.Intro.GoldenMeteors(now)
}

// refreshInterval reads the preference, falling back to the default for unset or bad values.
func (app *GeminidsApp) refreshInterval() time.Duration {
	sec := app.Preferences.IntWithFallback(config.PrefRefreshSec, config.DefaultRefreshSec)
	if sec <= 0 {
		sec = config.DefaultRefreshSec
	}
	return time.Duration(sec) * time.Second
}

// loadBirthdaySource assembles the vCard source from preferences and the keyring.
func (app *GeminidsApp) loadBirthdaySource() engine.BirthdaySource {
	src := engine.BirthdaySource{
		Mode:      app.Preferences.String(config.PrefSourceMode),
		LocalPath: app.Preferences.String(config.PrefLocalPath),
		WebURL:    app.Preferences.String(config.PrefVCardURL),
		WebUser:   app.Preferences.String(config.PrefUsername),
	}

	if src.Mode == config.SourceModeWeb && src.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, src.WebUser); err == nil {
			src.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, src.WebUser,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}
	return src
}

// applyBirthday resolves the configured birthday and installs it. Blocking.
func (app *GeminidsApp) applyBirthday() {
	md := app.Resolver.ResolveOrDefault(app.Ctx, app.loadBirthdaySource())

	app.stateMut.Lock()
	app.Generator.Birthday = md
	app.Intro.Birthday = md
	app.stateMut.Unlock()
}

// desktopNotifier shows transition messages as OS notifications.
type desktopNotifier struct {
	app fyne.App
}

func (d desktopNotifier) Notify(_ context.Context, text string) error {
	d.app.SendNotification(fyne.NewNotification(config.AppName, text))
	return nil
}
