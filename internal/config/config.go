package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Geminids/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName             = "Go Geminids"
	AppID               = "com.github.tartampluch.go-geminids"
	KeyringService      = "com.github.tartampluch.go-geminids"
	KeyringTelegramUser = "telegram"
	LocalhostBindAddr   = "127.0.0.1"
	LogFileName         = "app.log"
	IconFile            = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// Astronomy
// -----------------------------------------------------------------------------

const (
	// Solar longitudes (degrees, J2000 ecliptic) bounding the Geminid activity window.
	SolarLongitudeStart = 261.7
	SolarLongitudePeak  = 262.2
	SolarLongitudeEnd   = 262.7

	// The December bracket searched for a longitude, [Dec 1, Dec 25) UTC.
	SearchStartDay = 1
	SearchEndDay   = 25
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagHeadless     = "headless"
	FlagStatus       = "status"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescHeadless = "Run without a GUI: serve the feed and send notifications (configured by environment)"
	FlagDescStatus   = "Print the current Geminid status as JSON and exit"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
	JSONIndent       = "  "
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 600
	CountdownWinWidth   = 460
	CountdownWinHeight  = 360
	IntroWinWidth       = 420
	IntroWinHeight      = 260

	// Preference Keys
	PrefLanguage   = "language"
	PrefSourceMode = "birthday_source_mode"
	PrefLocalPath  = "birthday_local_path"
	PrefVCardURL   = "birthday_vcard_url"
	PrefUsername   = "birthday_username"
	PrefRefreshSec = "refresh_interval_sec"
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "zh"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinSettings   = "win_settings_title"
	TKeyWinCountdown  = "win_countdown_title"
	TKeyWinIntro      = "win_intro_title"
	TKeyMenuCountdown = "menu_countdown"
	TKeyMenuRefresh   = "menu_refresh"
	TKeyMenuSettings  = "menu_settings"

	// Status lines. Template data: Year, Countdown, Date, Phase.
	TKeyStatusWaiting  = "status_waiting"
	TKeyStatusActive   = "status_active"
	TKeyCountdownStart = "lbl_countdown_start"
	TKeyCountdownEnd   = "lbl_countdown_end"
	TKeyPeak           = "lbl_peak"
	TKeyMoon           = "lbl_moon"
	TKeyFormatDateTime = "format_datetime"

	// TKeyPhasePrefix + lunar.PhaseKey names a moon phase.
	TKeyPhasePrefix = "phase_"

	TKeyIntroGreeting = "intro_greeting"
	TKeyIntroBody     = "intro_body"
	TKeyBtnContinue   = "btn_continue"
	TKeyBirthdayBadge = "lbl_birthday_badge"

	TKeyNotifRefreshed = "notif_refreshed"

	TKeyLblGeneral   = "lbl_general"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblRefresh   = "lbl_refresh_interval"
	TKeyLblSeconds   = "lbl_seconds_suffix"
	TKeyHelpInterval = "help_interval"
	TKeyLblPort      = "lbl_server_port"
	TKeyHelpPort     = "help_port"
	TKeyLblBirthday  = "lbl_birthday_source"
	TKeyHelpBirthday = "help_birthday_source"
	TKeyModeNone     = "mode_none"
	TKeyModeWeb      = "mode_web"
	TKeyModeLocal    = "mode_local"
	TKeyLblURL       = "lbl_url"
	TKeyHelpURL      = "help_vcard_url"
	TKeyLblUser      = "lbl_user"
	TKeyLblPass      = "lbl_pass"
	TKeyBtnBrowse    = "btn_browse"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyLblFooter    = "lbl_footer"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// Template data field names shared by the locale files.
const (
	TplYear      = "Year"
	TplCountdown = "Countdown"
	TplDate      = "Date"
	TplPhase     = "Phase"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeNone         = ""
	SourceModeWeb          = "web"
	SourceModeLocal        = "local"
	DefaultPort            = "18214"
	DefaultRefreshSec      = 60
	DefaultRefreshInterval = DefaultRefreshSec * time.Second
	TickInterval           = 1 * time.Second
	DefaultLanguage        = "en"
	DefaultLeapYear        = 2000 // Leap year fallback for dates like --02-29
	DefaultBirthdayDay     = 14   // December 14
	DefaultCalendarYears   = 3

	JobTagRefresh = "refresh"
	JobTagTick    = "tick"

	// FormatIntroKey stores the yearly "intro seen" flag; the year makes it reset annually.
	FormatIntroKey  = "geminids_birthday_intro_seen_%d"
	FormatMonthDay  = "--%02d-%02d"
	FormatCountdown = "%02d:%02d:%02d:%02d"

	DateTimeFormatDisplay = "2006-01-02 15:04"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion        = "2.0"
	ICalProdid         = "-//Go Geminids//Engine//EN"
	ICalCalName        = "Geminids"
	ICalMethod         = "PUBLISH"
	ICalScale          = "GREGORIAN"
	ICalComponentAlarm = "VALARM"
	ICalAction         = "DISPLAY"
	ICalDomain         = "geminids"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"

	DefaultICalRefresh  = 1 * time.Hour
	PeakEventLength     = 1 * time.Hour
	PeakReminderTrigger = "-PT1H"

	EventSummaryWindow     = "Geminids meteor shower"
	EventSummaryPeak       = "Geminids peak"
	FormatEventDescription = "Moon at peak: %s (Geminids %d)\n%s"

	// UIDs are stable per year so calendar clients update events in place.
	FormatUID     = "%s-%d@%s"
	UIDKindWindow = "window"
	UIDKindPeak   = "peak"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort      = 1
	MaxPort      = 65535
	MaxVCardSize = 1 << 20 // 1 MiB, far above any single contact

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout        = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	SchemeHTTP         = "http"
	SchemeHTTPS        = "https"
	RouteCalendar      = "/geminids.ics"
	RouteStatus        = "/status.json"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`

	// AcceptVCard prefers vCard 4 (RFC 6350) and tolerates the legacy type.
	AcceptVCard = "text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
)

// -----------------------------------------------------------------------------
// Headless Environment
// -----------------------------------------------------------------------------

const (
	EnvPort          = "PORT"
	EnvRefreshSec    = "REFRESH_SECONDS"
	EnvStateDir      = "STATE_DIR"
	EnvBirthdayVCard = "BIRTHDAY_VCARD"
	EnvBirthdayURL   = "BIRTHDAY_URL"
	EnvBirthdayUser  = "BIRTHDAY_USER"
	EnvTelegramToken = "TG_BOT_TOKEN"
	EnvChatID        = "CHAT_ID"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogFormatJSON = "json"
	LogFormatText = "text"

	DefaultStateDirName = "state"
)

// -----------------------------------------------------------------------------
// Notification Texts
// -----------------------------------------------------------------------------

const (
	FormatMsgOpened   = "The Geminids are active!\nPeak: %s UTC\nMoon: %s\n%s"
	FormatMsgNext     = "The Geminids window has closed.\nThe %d shower opens %s UTC."
	FormatMsgBirthday = "Happy Birthday! The sky is putting on a show for you.\n%s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrRequestBuild     = "failed to build HTTP request"
	ErrNetwork          = "network request failed"
	ErrUnexpectedStatus = "unexpected HTTP status"
	ErrVCardRead        = "failed to read vCard source"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrNoBirthday       = "no usable BDAY found in vCard"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrJSONEncode       = "failed to encode status JSON"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create directory"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrScheduleJob      = "failed to schedule job"
	ErrStateDirEmpty    = "state directory is empty"
	ErrStateRead        = "failed to read state file"
	ErrStateWrite       = "failed to write state file"
	ErrChatID           = "CHAT_ID must be an integer"
	ErrTelegramAuth     = "telegram bot authentication failed"
	ErrTelegramSend     = "failed to send telegram message"
	ErrNotify           = "notification failed"
	ErrEnvInvalid       = "invalid environment configuration"
	ErrRefreshRange     = "REFRESH_SECONDS must be a positive integer"
	ErrLogLevel         = "LOG_LEVEL must be one of: debug, info, warn, error"
	ErrLogFormat        = "LOG_FORMAT must be one of: json, text"
	ErrTokenNoChat      = "CHAT_ID is required when a Telegram token is set"
	ErrTwoSources       = "BIRTHDAY_VCARD and BIRTHDAY_URL are mutually exclusive"
	ErrKeyringSave      = "failed to save credentials to keyring"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackTrayLabel = "Go Geminids"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy or unavailable."

	MsgRefreshReq       = "Refresh requested"
	MsgSchedulerStart   = "Scheduler started"
	MsgSchedulerStop    = "Scheduler stopping due to context cancellation"
	MsgUpdateRefresh    = "Updating refresh interval"
	MsgAppStop          = "Application stopped gracefully"
	MsgCtxCancel        = "Context cancelled, shutting down UI"
	MsgSkippedDate      = "Skipping invalid date format"
	MsgBirthdayResolved = "Birthday resolved from vCard"
	MsgBirthdayFallback = "Birthday source unusable, using default date"
	MsgFetchBadStatus   = "vCard download returned non-OK status"
	MsgFetchOK          = "vCard downloaded"
	MsgSnapshot         = "Snapshot computed"
	MsgIntroComplete    = "Birthday intro marked as seen"
	MsgIntroShow        = "Showing birthday intro"
	MsgAppStarting      = "Starting application"
	MsgHeadlessStarting = "Starting headless daemon"
	MsgServerListen     = "HTTP server listening"
	MsgServerStop       = "Shutting down HTTP server..."
	MsgCacheUpdated     = "Feed cache updated"
	MsgLocaleSkip       = "Skipping non-locale file"
	MsgLocaleBadName    = "Skipping malformed locale filename"
	MsgLocaleLoaded     = "Locale loaded successfully"
	MsgTransMissing     = "Missing translation key"
	MsgPassFail         = "Password retrieval failed (might be empty)"
	MsgLogWarning       = "Warning: %s at %s: %v\n"
	MsgStateUpdated     = "State flag updated"
	MsgTelegramReady    = "Telegram bot authorized"
	MsgTelegramOff      = "Telegram not configured, notifications go to the log"
	MsgNotification     = "Notification"
	MsgTransition       = "Geminid status changed"
	MsgOpenWindow       = "Opening window"
	MsgSavePrefs        = "Saving preferences"

	PlaceholderURL = "https://..."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyUser      = "user"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyRoute     = "route"
	LogKeyShower    = "shower_status"
	LogKeyYear      = "year"
	LogKeyPhase     = "moon_phase"
	LogKeyWindow    = "window"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompUISet     = "ui_settings"
	CompEngine    = "engine"
	CompServer    = "server"
	CompFetcher   = "fetcher"
	CompScheduler = "scheduler"
	CompNotify    = "notify"
	CompStore     = "store"
	CompMain      = "main"
	CompI18n      = "i18n"
	CompConfig    = "config"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
