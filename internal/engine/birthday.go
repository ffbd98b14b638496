package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-geminids/internal/config"
)

// BirthdaySource says where the birthday person's vCard lives.
// An empty Mode means no source: the default date is used.
type BirthdaySource struct {
	Mode      string // config.SourceModeLocal, config.SourceModeWeb or ""
	LocalPath string // Absolute path to the .vcf file
	WebURL    string // CardDAV or WebDAV URL of a single contact
	WebUser   string // HTTP Basic Auth Username
	WebPass   string // HTTP Basic Auth Password
}

// BirthdayResolver reads the intro date out of a vCard.
type BirthdayResolver struct {
	Fetcher VCardFetcher
}

// Resolve returns the birthday of the first card with a usable BDAY.
// With no source configured it returns DefaultBirthday and no error.
func (r *BirthdayResolver) Resolve(ctx context.Context, src BirthdaySource) (MonthDay, error) {
	if src.Mode == "" {
		return DefaultBirthday, nil
	}

	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, src.Mode,
	)

	reader, err := r.acquireStream(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return MonthDay{}, ctx.Err()
		}
		return MonthDay{}, fmt.Errorf("%s: %w", config.ErrVCardRead, err)
	}
	defer func() { _ = reader.Close() }()

	decoder := vcard.NewDecoder(reader)
	for {
		if err := ctx.Err(); err != nil {
			return MonthDay{}, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return MonthDay{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		date, err := parseDate(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyValue, bday.Value)
			continue
		}

		md := MonthDay{Month: date.Month(), Day: date.Day()}
		log.Info(config.MsgBirthdayResolved, config.LogKeyValue, md.String())
		return md, nil
	}

	return MonthDay{}, errors.New(config.ErrNoBirthday)
}

// ResolveOrDefault is Resolve with a logged fallback to DefaultBirthday.
func (r *BirthdayResolver) ResolveOrDefault(ctx context.Context, src BirthdaySource) MonthDay {
	md, err := r.Resolve(ctx, src)
	if err != nil {
		slog.Warn(config.MsgBirthdayFallback,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyError, err)
		return DefaultBirthday
	}
	return md
}

// acquireStream opens the appropriate data source based on configuration.
func (r *BirthdayResolver) acquireStream(ctx context.Context, src BirthdaySource) (io.ReadCloser, error) {
	switch src.Mode {
	case config.SourceModeLocal:
		if src.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(src.LocalPath)
	case config.SourceModeWeb:
		if src.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if r.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return r.Fetcher.Fetch(ctx, src.WebURL, src.WebUser, src.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, src.Mode)
	}
}

// parseDate accepts full dates and the vCard truncated --MM-DD forms.
// Yearless dates are pinned to a leap year so --02-29 survives parsing.
func parseDate(value string) (time.Time, error) {
	for _, f := range []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	} {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
