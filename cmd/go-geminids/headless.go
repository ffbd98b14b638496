package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
	"github.com/tartampluch/go-geminids/internal/notify"
	"github.com/tartampluch/go-geminids/internal/scheduler"
	"github.com/tartampluch/go-geminids/internal/server"
	"github.com/tartampluch/go-geminids/internal/store"
	"github.com/zalando/go-keyring"
)

// runHeadless serves the feed and sends notifications without a display.
// Everything is configured from the environment. Blocks until ctx is cancelled.
func runHeadless(ctx context.Context, debugMode bool) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	setupHeadlessLogging(os.Stdout, env, debugMode)
	logStartupInfo()
	slog.Info(config.MsgHeadlessStarting,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyPort, env.Port,
		config.LogKeyInterval, env.Refresh,
		config.LogKeyMode, env.SourceMode(),
	)

	flags, err := store.NewFileFlags(env.StateDir)
	if err != nil {
		return err
	}

	gen := engine.NewGenerator()
	resolver := &engine.BirthdayResolver{Fetcher: engine.NewHTTPFetcher()}
	gen.Birthday = resolver.ResolveOrDefault(ctx, headlessSource(env))

	notifier, err := newNotifier(env)
	if err != nil {
		return err
	}

	announcer := &notify.Announcer{
		Notifier: notifier,
		Intro:    engine.NewIntro(flags, gen.Birthday),
	}
	srv := server.NewFeedServer(env.Port)

	refresh := func(now time.Time) {
		snap := gen.Snapshot(now)
		if err := srv.Publish(gen, snap); err != nil {
			slog.Error(config.ErrICalEncode,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err)
		}
		announcer.Handle(ctx, snap, now)
	}

	sched := scheduler.New(gen.Clock, env.Refresh, refresh, nil)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer sched.Stop()

	return srv.Start(ctx)
}

// headlessSource maps the BIRTHDAY_* variables onto a vCard source.
// The web password comes from the keyring entry of BIRTHDAY_USER.
func headlessSource(env *config.Env) engine.BirthdaySource {
	src := engine.BirthdaySource{
		Mode:      env.SourceMode(),
		LocalPath: env.VCardPath,
		WebURL:    env.VCardURL,
		WebUser:   env.VCardUser,
	}

	if src.Mode == config.SourceModeWeb && src.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, src.WebUser); err == nil {
			src.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, src.WebUser,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompMain)
		}
	}
	return src
}

// newNotifier returns the Telegram bot when configured, else a log sink.
func newNotifier(env *config.Env) (notify.Notifier, error) {
	if !env.TelegramEnabled() {
		slog.Info(config.MsgTelegramOff, config.LogKeyComponent, config.CompMain)
		return notify.LogNotifier{}, nil
	}
	return notify.NewTelegram(env.TelegramToken, env.ChatID)
}

// setupHeadlessLogging honours LOG_LEVEL and LOG_FORMAT; -debug forces debug level.
func setupHeadlessLogging(w io.Writer, env *config.Env, debugMode bool) {
	level := env.SlogLevel()
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	var handler slog.Handler
	if env.LogFormat == config.LogFormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
