// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripFunc lets a test stand in for the network transport.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// cannedTransport answers every request with status and body and records the
// requested URLs.
func cannedTransport(status int, body string, seen *[]string) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		*seen = append(*seen, r.URL.String())
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	}
}

func newTestClient(t *testing.T, baseURL string) *DirectoryClient {
	t.Helper()
	lookup := config.MapLookup(map[string]string{config.APIURLKey: baseURL})
	return NewDirectoryClient(utils.NewHTTPClient(5*time.Second), lookup, logger.Nop())
}

func newJSONServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewDirectoryClient_ResolvesBaseURLOnce(t *testing.T) {
	calls := 0
	lookup := func(key string) (string, bool) {
		calls++
		return "https://internal.test", true
	}

	var seen []string
	httpClient := utils.NewHTTPClient(0)
	httpClient.SetTransport(cannedTransport(http.StatusOK, `[]`, &seen))

	c := NewDirectoryClient(httpClient, lookup, logger.Nop())
	for range 3 {
		_, err := c.ListUsers(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls)
	assert.Len(t, seen, 3)
}

func TestNewDirectoryClient_NilDependencies(t *testing.T) {
	c := NewDirectoryClient(nil, nil, nil)

	require.NotNil(t, c.client)
	require.NotNil(t, c.logger)
	assert.Equal(t, config.DefaultAPIURL, c.BaseURL())
}

func TestDirectoryClient_UsersURL(t *testing.T) {
	tests := []struct {
		name    string
		lookup  config.Lookup
		wantURL string
	}{
		{
			name:    "default when unset",
			lookup:  config.MapLookup(nil),
			wantURL: "https://api.example.com/users",
		},
		{
			name:    "configured base without slash",
			lookup:  config.MapLookup(map[string]string{config.APIURLKey: "https://internal.test"}),
			wantURL: "https://internal.test/users",
		},
		{
			name:    "configured base with trailing slash",
			lookup:  config.MapLookup(map[string]string{config.APIURLKey: "https://internal.test/"}),
			wantURL: "https://internal.test/users",
		},
		{
			name:    "configured base with path prefix",
			lookup:  config.MapLookup(map[string]string{config.APIURLKey: "https://internal.test/api/v1/"}),
			wantURL: "https://internal.test/api/v1/users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDirectoryClient(nil, tt.lookup, nil)
			assert.Equal(t, tt.wantURL, c.UsersURL())
		})
	}
}

// ── ListUsers: targets ──────────────────────────────────────────────────────

func TestListUsers_DefaultTarget(t *testing.T) {
	var seen []string
	httpClient := utils.NewHTTPClient(0)
	httpClient.SetTransport(cannedTransport(http.StatusOK, `[{"id":1,"name":"Ann","email":"ann@x.com"}]`, &seen))

	c := NewDirectoryClient(httpClient, config.MapLookup(nil), logger.Nop())
	users, err := c.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://api.example.com/users"}, seen)
	assert.Equal(t, []models.User{{ID: 1, Name: "Ann", Email: "ann@x.com"}}, users)
}

func TestListUsers_ConfiguredTargetEmptyDirectory(t *testing.T) {
	var seen []string
	httpClient := utils.NewHTTPClient(0)
	httpClient.SetTransport(cannedTransport(http.StatusOK, `[]`, &seen))

	lookup := config.MapLookup(map[string]string{config.APIURLKey: "https://internal.test"})
	c := NewDirectoryClient(httpClient, lookup, logger.Nop())
	users, err := c.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://internal.test/users"}, seen)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_RequestShape(t *testing.T) {
	for _, suffix := range []string{"", "/"} {
		t.Run("base suffix "+suffix, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/users", r.URL.Path)
				assert.Empty(t, r.URL.RawQuery)
				assert.Empty(t, r.Header.Get("Authorization"))

				body, _ := io.ReadAll(r.Body)
				assert.Empty(t, body)

				_, _ = w.Write([]byte(`[]`))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL+suffix).ListUsers(context.Background())
			require.NoError(t, err)
		})
	}
}

// ── ListUsers: success ──────────────────────────────────────────────────────

func TestListUsers_RoundTrip(t *testing.T) {
	body := `[
		{"id": 3, "name": "Cid", "email": "cid@x.com"},
		{"id": 1, "name": "Ann", "email": "ann@x.com", "role": "admin"},
		{"id": 3, "name": "Cid", "email": "cid@x.com"},
		{"id": 0, "name": "Root", "email": "not-an-email"}
	]`
	srv := newJSONServer(t, http.StatusOK, body)

	users, err := newTestClient(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 3, Name: "Cid", Email: "cid@x.com"},
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 3, Name: "Cid", Email: "cid@x.com"},
		{ID: 0, Name: "Root", Email: "not-an-email"},
	}, users)
}

func TestListUsers_EmptyDirectory(t *testing.T) {
	srv := newJSONServer(t, http.StatusOK, `[]`)

	users, err := newTestClient(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_ConcurrentCalls(t *testing.T) {
	srv := newJSONServer(t, http.StatusOK, `[{"id":1,"name":"Ann","email":"ann@x.com"}]`)
	c := newTestClient(t, srv.URL)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users, err := c.ListUsers(context.Background())
			if err == nil && len(users) != 1 {
				err = errors.New("unexpected users count")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// ── ListUsers: failures ─────────────────────────────────────────────────────

func TestListUsers_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	users, err := newTestClient(t, baseURL).ListUsers(context.Background())

	require.Error(t, err)
	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrDecode)

	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
}

func TestListUsers_TransportErrorFromRoundTripper(t *testing.T) {
	cause := errors.New("tls handshake failure")
	httpClient := utils.NewHTTPClient(0)
	httpClient.SetTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, cause
	}))

	c := NewDirectoryClient(httpClient, config.MapLookup(nil), logger.Nop())
	users, err := c.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, cause)
}

func TestListUsers_ContextCanceled(t *testing.T) {
	srv := newJSONServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users, err := newTestClient(t, srv.URL).ListUsers(ctx)

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListUsers_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	lookup := config.MapLookup(map[string]string{config.APIURLKey: srv.URL})
	c := NewDirectoryClient(utils.NewHTTPClient(50*time.Millisecond), lookup, logger.Nop())

	users, err := c.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListUsers_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not-json`},
		{name: "empty body", body: ``},
		{name: "json null", body: `null`},
		{name: "object instead of array", body: `{"users": []}`},
		{name: "missing email", body: `[{"id":1,"name":"Ann","email":"ann@x.com"},{"id":2,"name":"Bob"}]`},
		{name: "missing id", body: `[{"name":"Ann","email":"ann@x.com"}]`},
		{name: "null name", body: `[{"id":1,"name":null,"email":"ann@x.com"}]`},
		{name: "string id", body: `[{"id":"1","name":"Ann","email":"ann@x.com"}]`},
		{name: "fractional id", body: `[{"id":1.5,"name":"Ann","email":"ann@x.com"}]`},
		{name: "negative id", body: `[{"id":-1,"name":"Ann","email":"ann@x.com"}]`},
		{name: "numeric email", body: `[{"id":1,"name":"Ann","email":42}]`},
		{name: "null entry", body: `[null]`},
		{name: "truncated array", body: `[{"id":1,"name":"Ann","email":"ann@x.com"}`},
		{name: "trailing garbage", body: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newJSONServer(t, http.StatusOK, tt.body)

			users, err := newTestClient(t, srv.URL).ListUsers(context.Background())

			require.Error(t, err)
			assert.Nil(t, users)
			assert.ErrorIs(t, err, ErrDecode)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestListUsers_UnexpectedStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantSubstr string
	}{
		{name: "server error with error body", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantSubstr: "http 500"},
		{name: "not found with array body", status: http.StatusNotFound, body: `[]`, wantSubstr: "http 404"},
		{name: "empty body uses status text", status: http.StatusBadGateway, body: ``, wantSubstr: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newJSONServer(t, tt.status, tt.body)

			users, err := newTestClient(t, srv.URL).ListUsers(context.Background())

			assert.Nil(t, users)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
			assert.NotErrorIs(t, err, ErrDecode)
			assert.Contains(t, err.Error(), tt.wantSubstr)
		})
	}
}

// ── logging ─────────────────────────────────────────────────────────────────

func TestListUsers_LogsBeforeRequest(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	lookup := config.MapLookup(map[string]string{config.APIURLKey: baseURL})
	_, err := NewDirectoryClient(utils.NewHTTPClient(time.Second), lookup, log).ListUsers(context.Background())

	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 1, strings.Count(buf.String(), "listing directory users"))
	assert.Contains(t, buf.String(), baseURL+"/users")
	assert.Contains(t, buf.String(), `"level":"info"`)
}
