package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
	"github.com/tartampluch/go-geminids/internal/lunar"
	"github.com/tartampluch/go-geminids/internal/scheduler"
)

// Notifier delivers a plain text message somewhere a person will read it.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Sender is the part of *tgbotapi.BotAPI the Telegram notifier uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts messages to a single chat.
type Telegram struct {
	Bot    Sender
	ChatID int64
}

// NewTelegram authenticates the bot token and parses the chat id.
func NewTelegram(token, chatID string) (*Telegram, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrChatID, err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrTelegramAuth, err)
	}

	slog.Info(config.MsgTelegramReady,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyUser, bot.Self.UserName)

	return &Telegram{Bot: bot, ChatID: id}, nil
}

// Notify sends text as an escaped MarkdownV2 code span.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.ChatID, Mono(text))
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := t.Bot.Send(msg); err != nil {
		return fmt.Errorf("%s: %w", config.ErrTelegramSend, err)
	}
	return nil
}

// Mono returns text as monospaced, escaped MarkdownV2.
func Mono(s string) string {
	return "`" + tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s) + "`"
}

// LogNotifier writes messages to the log. Used when no chat is configured.
type LogNotifier struct{}

// Notify logs text at Info.
func (LogNotifier) Notify(_ context.Context, text string) error {
	slog.Info(config.MsgNotification,
		config.LogKeyComponent, config.CompNotify,
		config.LogKeyValue, text)
	return nil
}

// TransitionText renders the message for a change of shower state.
func TransitionText(tr scheduler.Transition, moon lunar.Info) string {
	if tr.Opened() {
		return fmt.Sprintf(config.FormatMsgOpened,
			formatInstant(tr.To.PeakDate), moon.Description, moon.Advice)
	}
	return fmt.Sprintf(config.FormatMsgNext, tr.To.Year, formatInstant(tr.To.TargetDate))
}

// BirthdayText renders the once-a-year greeting.
func BirthdayText(quote string) string {
	return fmt.Sprintf(config.FormatMsgBirthday, quote)
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(config.DateTimeFormatDisplay)
}

// Announcer turns refreshed snapshots into notifications: one per shower
// transition and one birthday greeting per year.
type Announcer struct {
	Notifier Notifier
	Watcher  scheduler.Watcher

	// Intro guards the greeting; nil disables it.
	Intro *engine.Intro
}

// Handle inspects snap and sends whatever is due. Delivery failures are logged;
// an unsent greeting stays pending and is retried on the next refresh.
func (a *Announcer) Handle(ctx context.Context, snap engine.Snapshot, now time.Time) {
	log := slog.With(config.LogKeyComponent, config.CompNotify)

	if tr, ok := a.Watcher.Observe(snap.Geminid); ok {
		log.Info(config.MsgTransition,
			config.LogKeyOld, tr.From.Status,
			config.LogKeyNew, tr.To.Status,
			config.LogKeyYear, tr.To.Year)

		if err := a.Notifier.Notify(ctx, TransitionText(tr, snap.Moon)); err != nil {
			log.Error(config.ErrNotify, config.LogKeyError, err)
		}
	}

	if a.Intro == nil || !a.Intro.Pending(now) {
		return
	}
	if err := a.Notifier.Notify(ctx, BirthdayText(engine.PickQuote(true, nil))); err != nil {
		log.Error(config.ErrNotify, config.LogKeyError, err)
		return
	}
	a.Intro.Complete(now)
}
