// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

// Package response tracks the status of one outgoing HTTP response and
// emits its redirects, headers and body through a Transport.
package response

import (
	"log/slog"
	"net/http"

	"github.com/axm-framework/httpcore/httperr"
	"github.com/axm-framework/httpcore/logging"
)

// DefaultMaxRedirects is the redirect budget of one response.
const DefaultMaxRedirects = 100

// Response is the state of one in-flight response. It is owned by a single
// request and is not safe for concurrent use.
type Response struct {
	transport Transport
	events    Events
	policy    RedirectPolicy
	logger    *slog.Logger

	code         int
	message      string
	redirects    int
	maxRedirects int
	protocol     string
	finished     bool
}

// Option configures a Response.
type Option func(*Response)

// WithEvents sets the receiver of the beforeRedirect and afterRedirect hooks.
func WithEvents(e Events) Option {
	return func(r *Response) {
		r.events = e
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Response) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMaxRedirects overrides DefaultMaxRedirects. Values below zero are
// ignored.
func WithMaxRedirects(n int) Option {
	return func(r *Response) {
		if n >= 0 {
			r.maxRedirects = n
		}
	}
}

// WithProtocol records the request protocol, such as "HTTP/1.0".
func WithProtocol(proto string) Option {
	return func(r *Response) {
		r.protocol = proto
	}
}

// WithRedirectPolicy restricts redirect targets to those p allows.
func WithRedirectPolicy(p RedirectPolicy) Option {
	return func(r *Response) {
		r.policy = p
	}
}

// New returns a Response writing through t. The initial status is 200 OK.
func New(t Transport, opts ...Option) *Response {
	r := &Response{
		transport:    t,
		logger:       logging.Discard(),
		code:         http.StatusOK,
		message:      statusMessages[http.StatusOK],
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StatusCode returns the current status code.
func (r *Response) StatusCode() int {
	return r.code
}

// Message returns the reason phrase of the current status.
func (r *Response) Message() string {
	return r.message
}

// RedirectCount returns the number of redirects issued so far.
func (r *Response) RedirectCount() int {
	return r.redirects
}

// Finished reports whether a terminal operation has completed.
func (r *Response) Finished() bool {
	return r.finished
}

// HTTPVersion returns "1.0" when the request protocol is HTTP/1.0 and
// "1.1" otherwise.
func (r *Response) HTTPVersion() string {
	if r.protocol == "HTTP/1.0" {
		return "1.0"
	}
	return "1.1"
}

// MessageFromCode returns the reason phrase of code from the status table.
func (r *Response) MessageFromCode(code int) (string, bool) {
	return MessageFromCode(code)
}

// SetStatusCode sets the status and derives the message from the table.
func (r *Response) SetStatusCode(code int) error {
	return r.SetStatus(code, "")
}

// SetStatus sets the status and its message. An empty message is looked up
// in the table and stays empty for unknown codes.
func (r *Response) SetStatus(code int, message string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if err := ValidateStatusCode(code); err != nil {
		return err
	}
	r.setStatus(code, message)
	return nil
}

func (r *Response) setStatus(code int, message string) {
	if message == "" {
		message = statusMessages[code]
	}
	r.code = code
	r.message = message
	r.transport.SetStatus(code)
}

func (r *Response) writable() error {
	if r.finished {
		return httperr.WithCode(ErrResponseFinished, http.StatusInternalServerError)
	}
	return nil
}

func (r *Response) trigger(name string) {
	if r.events != nil {
		r.events.Trigger(name)
	}
}
