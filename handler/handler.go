// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/axm-framework/httpcore/config"
	"github.com/axm-framework/httpcore/httperr"
	"github.com/axm-framework/httpcore/logging"
	"github.com/axm-framework/httpcore/recovery"
	"github.com/axm-framework/httpcore/response"
	"github.com/axm-framework/httpcore/uri"
)

// Context is what a Func sees of one request.
type Context struct {
	Request  *http.Request
	URI      *uri.URI
	Response *response.Response
	Logger   *slog.Logger
}

// Func handles one request. Returning nil or response.ErrHalt completes the
// request; any other error is answered with httperr.Code(err).
type Func func(ctx *Context) error

// Option configures the handler.
type Option func(*Handler)

// WithLogger sets the logger passed to responses and used for failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithEvents sets the redirect hook receiver of every response.
func WithEvents(e response.Events) Option {
	return func(h *Handler) {
		h.events = e
	}
}

// Handler adapts a Func to net/http.
type Handler struct {
	fn     Func
	cfg    config.Config
	logger *slog.Logger
	events response.Events
	policy response.RedirectPolicy
	uriOps []uri.Option
}

// New returns an http.Handler running fn with a fresh URI and Response per
// request, configured from cfg and guarded by recovery.Middleware. It fails
// when the redirect policy of cfg does not compile.
//
// cfg.MaxRedirects is used as given, and zero allows no redirect at all.
// Build cfg from config.Default, Load or Parse rather than a zero Config
// unless that is intended.
func New(cfg config.Config, fn Func, opts ...Option) (http.Handler, error) {
	h := &Handler{
		fn:     fn,
		cfg:    cfg,
		logger: logging.Discard(),
		uriOps: cfg.URIOptions(),
	}
	for _, opt := range opts {
		opt(h)
	}

	p, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	if p != nil {
		h.policy = p
	}

	return recovery.Middleware(h, h.logger), nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	transport := response.NewHTTPTransport(w)

	ctx := &Context{
		Request:  r,
		URI:      uri.New(uri.RequestFromHTTP(r), h.uriOps...),
		Response: response.New(transport, h.responseOptions(r)...),
		Logger:   h.logger,
	}

	err := h.fn(ctx)
	if err == nil || errors.Is(err, response.ErrHalt) {
		transport.Flush()
		return
	}

	if ctx.Response.Finished() || transport.Written() {
		h.logger.WarnContext(r.Context(), "request failed after the response was written",
			"path", r.URL.Path, "error", err)
		transport.Flush()
		return
	}

	code := httperr.Code(err)
	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed", "path", r.URL.Path, "status", code, "error", err)

	w.Header().Del("Location")
	http.Error(w, statusText(code), code)
}

func (h *Handler) responseOptions(r *http.Request) []response.Option {
	opts := []response.Option{
		response.WithLogger(h.logger),
		response.WithMaxRedirects(h.cfg.MaxRedirects),
		response.WithProtocol(r.Proto),
	}
	if h.events != nil {
		opts = append(opts, response.WithEvents(h.events))
	}
	if h.policy != nil {
		opts = append(opts, response.WithRedirectPolicy(h.policy))
	}
	return opts
}

func statusText(code int) string {
	if msg, ok := response.MessageFromCode(code); ok {
		return msg
	}
	if msg := http.StatusText(code); msg != "" {
		return msg
	}
	return "Error"
}
