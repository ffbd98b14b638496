package engine_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-geminids/internal/config"
	"github.com/tartampluch/go-geminids/internal/engine"
)

// TestHTTPFetcher_SendsCredentialsAndUA checks headers on a successful download.
func TestHTTPFetcher_SendsCredentialsAndUA(t *testing.T) {
	body := "BEGIN:VCARD\nVERSION:3.0\nFN:Stargazer\nBDAY:--12-14\nEND:VCARD"

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok, "basic auth header should be present")
		assert.Equal(t, "astro", user)
		assert.Equal(t, "meteor", pass)
		assert.Equal(t, config.UserAgent, r.Header.Get(config.HeaderUserAgent))
		assert.Equal(t, config.AcceptVCard, r.Header.Get(config.HeaderAccept))
		_, _ = w.Write([]byte(body))
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "astro", "meteor")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestHTTPFetcher_NoAuthWhenEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
	require.NoError(t, err)
	_ = rc.Close()
}

// TestHTTPFetcher_SizeLimit ensures oversized bodies are truncated at MaxVCardSize.
func TestHTTPFetcher_SizeLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(w, strings.NewReader(strings.Repeat("x", config.MaxVCardSize+1024)))
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Len(t, got, config.MaxVCardSize)
}

func TestHTTPFetcher_StatusErrors(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusInternalServerError} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			}))
			defer ts.Close()

			rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
			require.Error(t, err)
			assert.Nil(t, rc)
			assert.Contains(t, err.Error(), config.ErrUnexpectedStatus)
		})
	}
}

func TestHTTPFetcher_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := engine.NewHTTPFetcher().Fetch(ctx, ts.URL, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPFetcher_RejectsBadURLs(t *testing.T) {
	f := engine.NewHTTPFetcher()

	_, err := f.Fetch(context.Background(), string([]byte{0x7f}), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrInvalidURL)

	_, err = f.Fetch(context.Background(), "ftp://example.com/me.vcf", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrProtocol)
}
