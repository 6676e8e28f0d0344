// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axm-framework/httpcore/config"
	"github.com/axm-framework/httpcore/handler"
	"github.com/axm-framework/httpcore/logging"
	"github.com/axm-framework/httpcore/response"
)

func serve(t *testing.T, cfg config.Config, fn handler.Func, req *http.Request, opts ...handler.Option) *httptest.ResponseRecorder {
	t.Helper()

	h, err := handler.New(cfg, fn, opts...)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_TerminalOutput(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	rec := serve(t, config.Default(), func(c *handler.Context) error {
		id, err := c.URI.Segment(2, "")
		if err != nil {
			return err
		}
		return c.Response.OutJSON(map[string]string{"id": id}, http.StatusOK, "")
	}, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"id":"7"}`, rec.Body.String())
	assert.Equal(t, "application/json;charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHandler_NilCommitsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   handler.Func
		want int
	}{
		{name: "untouched", fn: func(*handler.Context) error { return nil }, want: http.StatusOK},
		{name: "status set", fn: func(c *handler.Context) error { return c.Response.SetStatusCode(http.StatusAccepted) }, want: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(t, config.Default(), tt.fn, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestHandler_Redirect(t *testing.T) {
	t.Parallel()

	var events []string
	req := httptest.NewRequest(http.MethodGet, "/old?ref=mail", nil)
	rec := serve(t, config.Default(), func(c *handler.Context) error {
		return c.Response.RedirectPath(c.URI, "/new")
	}, req, handler.WithEvents(response.EventsFunc(func(name string) {
		events = append(events, name)
	})))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://example.com/new?ref=mail", rec.Header().Get("Location"))
	assert.Equal(t, []string{response.EventBeforeRedirect, response.EventAfterRedirect}, events)
}

func TestHandler_ConfigShapesURI(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.BasePath = "/app"
	cfg.ForceSecureRequests = true

	req := httptest.NewRequest(http.MethodGet, "http://example.com:8443/app/a/./b", nil)
	req.Proto = "HTTP/1.0"

	rec := serve(t, cfg, func(c *handler.Context) error {
		return c.Response.Send([]string{c.URI.Scheme(), c.URI.Path(), c.URI.URL(), c.Response.HTTPVersion()}, 0, "", "")
	}, req)

	assert.Equal(t, "https\n/a/b\nhttps://example.com:8443/a/b\n1.0", rec.Body.String())
}

func TestHandler_ErrorsMapToStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      func() config.Config
		fn       handler.Func
		wantCode int
		wantBody string
	}{
		{
			name: "segment out of range",
			cfg:  config.Default,
			fn: func(c *handler.Context) error {
				_, err := c.URI.Segment(5, "")
				return err
			},
			wantCode: http.StatusNotFound,
			wantBody: "Not Found\n",
		},
		{
			name: "redirect cycle",
			cfg: func() config.Config {
				cfg := config.Default()
				cfg.MaxRedirects = 2
				return cfg
			},
			fn: func(c *handler.Context) error {
				for i := 0; ; i++ {
					if err := c.Response.Redirect(fmt.Sprintf("https://example.com/%d", i)); err != nil {
						return err
					}
				}
			},
			wantCode: http.StatusLoopDetected,
			wantBody: "Loop Detected\n",
		},
		{
			name: "policy rejects host",
			cfg: func() config.Config {
				cfg := config.Default()
				cfg.RedirectPolicy = `target.host == "example.com"`
				return cfg
			},
			fn: func(c *handler.Context) error {
				return c.Response.Redirect("https://elsewhere.example.org/")
			},
			wantCode: http.StatusForbidden,
			wantBody: "Forbidden, You don't have permission to access this page\n",
		},
		{
			name:     "plain error",
			cfg:      config.Default,
			fn:       func(*handler.Context) error { return errors.New("database down") },
			wantCode: http.StatusInternalServerError,
			wantBody: "Internal Server Error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(t, tt.cfg(), tt.fn, httptest.NewRequest(http.MethodGet, "/a/b", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Empty(t, rec.Header().Get("Location"))
		})
	}
}

func TestHandler_ErrorAfterBodyKeepsBody(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf), logging.WithLevel(slog.LevelWarn))

	rec := serve(t, config.Default(), func(c *handler.Context) error {
		_ = c.Response.Send("partial", http.StatusOK, "", "")
		return errors.New("late failure")
	}, httptest.NewRequest(http.MethodGet, "/", nil), handler.WithLogger(logger))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Contains(t, buf.String(), "request failed after the response was written")
}

func TestHandler_RecoversPanics(t *testing.T) {
	t.Parallel()

	rec := serve(t, config.Default(), func(*handler.Context) error {
		panic("boom")
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNew_InvalidPolicy(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.RedirectPolicy = "target.host =="

	h, err := handler.New(cfg, func(*handler.Context) error { return nil })
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, h)
}

func TestHandler_RedirectBudget(t *testing.T) {
	t.Parallel()

	redirect := func(c *handler.Context) error {
		return c.Response.Redirect("https://example.com/next")
	}

	t.Run("default config allows redirects", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, config.Default(), redirect, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://example.com/next", rec.Header().Get("Location"))
	})

	t.Run("zero config allows none", func(t *testing.T) {
		t.Parallel()
		rec := serve(t, config.Config{}, redirect, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusLoopDetected, rec.Code)
		assert.Empty(t, rec.Header().Get("Location"))
	})
}
