package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

// Env is the headless daemon configuration, read from the process environment.
type Env struct {
	Port     string
	Refresh  time.Duration
	StateDir string

	// Birthday source; at most one of VCardPath and VCardURL is set.
	VCardPath string
	VCardURL  string
	VCardUser string

	TelegramToken string
	ChatID        string

	LogLevel  string
	LogFormat string
}

// LoadEnv reads the environment, loading a .env file first when one exists.
// A missing TG_BOT_TOKEN falls back to the keyring entry KeyringTelegramUser.
func LoadEnv() (*Env, error) {
	// Absent in production; the real environment wins over the file anyway.
	_ = godotenv.Load()

	e := &Env{
		Port:          getEnv(EnvPort, DefaultPort),
		StateDir:      getEnv(EnvStateDir, defaultStateDir()),
		VCardPath:     os.Getenv(EnvBirthdayVCard),
		VCardURL:      os.Getenv(EnvBirthdayURL),
		VCardUser:     os.Getenv(EnvBirthdayUser),
		TelegramToken: os.Getenv(EnvTelegramToken),
		ChatID:        os.Getenv(EnvChatID),
		LogLevel:      getEnv(EnvLogLevel, LogLevelInfo),
		LogFormat:     getEnv(EnvLogFormat, LogFormatJSON),
	}
	e.Refresh = time.Duration(getEnvInt(EnvRefreshSec, DefaultRefreshSec)) * time.Second

	if e.TelegramToken == "" {
		if token, err := keyring.Get(KeyringService, KeyringTelegramUser); err == nil {
			e.TelegramToken = token
		} else {
			slog.Debug(MsgPassFail,
				LogKeyComponent, CompConfig,
				LogKeyUser, KeyringTelegramUser,
				LogKeyError, err)
		}
	}

	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrEnvInvalid, err)
	}
	return e, nil
}

// Validate reports every problem at once.
func (e *Env) Validate() error {
	var errs []error

	if e.Port == "" {
		errs = append(errs, errors.New(ErrPortRequired))
	} else if p, err := strconv.Atoi(e.Port); err != nil {
		errs = append(errs, fmt.Errorf("%s: %q", ErrPortNumber, e.Port))
	} else if p < MinPort || p > MaxPort {
		errs = append(errs, fmt.Errorf("%s: %d", ErrPortRange, p))
	}

	if e.Refresh <= 0 {
		errs = append(errs, errors.New(ErrRefreshRange))
	}

	if e.StateDir == "" {
		errs = append(errs, errors.New(ErrStateDirEmpty))
	}

	if e.VCardPath != "" && e.VCardURL != "" {
		errs = append(errs, errors.New(ErrTwoSources))
	}

	if e.TelegramToken != "" {
		if e.ChatID == "" {
			errs = append(errs, errors.New(ErrTokenNoChat))
		}
	}
	if e.ChatID != "" {
		if _, err := strconv.ParseInt(e.ChatID, 10, 64); err != nil {
			errs = append(errs, fmt.Errorf("%s: %q", ErrChatID, e.ChatID))
		}
	}

	switch e.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		errs = append(errs, fmt.Errorf("%s; got %q", ErrLogLevel, e.LogLevel))
	}

	switch e.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("%s; got %q", ErrLogFormat, e.LogFormat))
	}

	return errors.Join(errs...)
}

// TelegramEnabled reports whether notifications go to a chat.
func (e *Env) TelegramEnabled() bool {
	return e.TelegramToken != "" && e.ChatID != ""
}

// SourceMode returns the birthday source mode implied by the variables set.
func (e *Env) SourceMode() string {
	switch {
	case e.VCardPath != "":
		return SourceModeLocal
	case e.VCardURL != "":
		return SourceModeWeb
	default:
		return SourceModeNone
	}
}

// SlogLevel converts LogLevel, defaulting to Info.
func (e *Env) SlogLevel() slog.Level {
	switch e.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultStateDir lives next to the log file; "" if the cache dir is unknown.
func defaultStateDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheDir, AppID, DefaultStateDirName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns defaultValue when key is unset; a malformed value becomes 0
// so Validate can report it instead of silently using the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
