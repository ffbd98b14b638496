package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
)

// document stores one rendered payload and its metadata for HTTP caching.
type document struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// slot is a single published route. The pointer is swapped whole on update.
type slot struct {
	contentType string
	current     atomic.Pointer[document]
}

// FeedServer serves the Geminid calendar and the JSON status on localhost.
type FeedServer struct {
	Port string

	// Built once in NewFeedServer and never mutated, so concurrent reads are safe.
	slots map[string]*slot
}

// NewFeedServer creates a server with the calendar and status routes registered.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{
		Port: port,
		slots: map[string]*slot{
			config.RouteCalendar: {contentType: config.MimeTextCalendar},
			config.RouteStatus:   {contentType: config.MimeJSON},
		},
	}
}

// Handler returns the mux serving every registered route.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	for route, sl := range s.slots {
		mux.HandleFunc(route, s.serveSlot(sl))
	}
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// UpdateCalendar replaces the ICS document.
func (s *FeedServer) UpdateCalendar(data []byte) {
	s.update(config.RouteCalendar, data)
}

// UpdateStatus replaces the JSON snapshot document.
func (s *FeedServer) UpdateStatus(data []byte) {
	s.update(config.RouteStatus, data)
}

// Publish renders snap as JSON and the calendar as of snap.GeneratedAt, then
// replaces both documents. On error neither document changes.
func (s *FeedServer) Publish(gen *engine.Generator, snap engine.Snapshot) error {
	status, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrJSONEncode, err)
	}

	ics, err := engine.BuildCalendar(snap.GeneratedAt, gen.CalendarYears, gen.Advisor)
	if err != nil {
		return err
	}

	s.UpdateCalendar(ics)
	s.UpdateStatus(status)
	return nil
}

// Ready reports whether every route has content.
func (s *FeedServer) Ready() bool {
	for _, sl := range s.slots {
		if sl.current.Load() == nil {
			return false
		}
	}
	return true
}

func (s *FeedServer) update(route string, data []byte) {
	sl, ok := s.slots[route]
	if !ok {
		return
	}

	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	prev := sl.current.Load()
	lastMod := time.Now().UTC().Format(http.TimeFormat)
	if prev != nil && prev.etag == etag {
		// Same bytes: keep Last-Modified stable so conditional requests still hit.
		lastMod = prev.lastModified
	}

	sl.current.Store(&document{
		data:         data,
		etag:         etag,
		lastModified: lastMod,
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, route,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// serveSlot serves one document with HTTP caching support.
func (s *FeedServer) serveSlot(sl *slot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set(config.HeaderAllow, config.AllowedMethods)
			http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
			return
		}

		doc := sl.current.Load()
		if doc == nil {
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set(config.HeaderContentType, sl.contentType)
		w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
		w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
		w.Header().Set(config.HeaderETag, doc.etag)
		w.Header().Set(config.HeaderLastModified, doc.lastModified)

		if match := r.Header.Get(config.HeaderIfNoneMatch); match == doc.etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
			if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
				if serverTime, err := time.Parse(http.TimeFormat, doc.lastModified); err == nil {
					if !serverTime.After(clientTime) {
						w.WriteHeader(http.StatusNotModified)
						return
					}
				}
			}
		}

		if r.Method == http.MethodGet {
			if _, err := io.Copy(w, bytes.NewReader(doc.data)); err != nil {
				slog.Error(config.ErrWriteResp,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyError, err,
				)
			}
		}
	}
}
