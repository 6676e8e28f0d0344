// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import "net/http"

//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks Transport

// Transport is the low-level emission primitive a Response writes through.
type Transport interface {
	// SetStatus sets the status line code.
	SetStatus(code int)
	// AddHeader appends a header value, keeping existing values of name.
	AddHeader(name, value string)
	// SetHeader replaces every value of name.
	SetHeader(name, value string)
	// Write writes body bytes. The status and headers are sent first.
	Write(p []byte) (int, error)
}

// HTTPTransport is the net/http implementation of Transport. The status is
// held back until the first Write or Flush so it can change while headers
// are being set.
type HTTPTransport struct {
	w       http.ResponseWriter
	status  int
	written bool
}

// NewHTTPTransport returns a Transport writing to w.
func NewHTTPTransport(w http.ResponseWriter) *HTTPTransport {
	return &HTTPTransport{w: w, status: http.StatusOK}
}

// SetStatus implements Transport. It has no effect once the header is written.
func (t *HTTPTransport) SetStatus(code int) {
	if !t.written {
		t.status = code
	}
}

// AddHeader implements Transport.
func (t *HTTPTransport) AddHeader(name, value string) {
	t.w.Header().Add(name, value)
}

// SetHeader implements Transport.
func (t *HTTPTransport) SetHeader(name, value string) {
	t.w.Header().Set(name, value)
}

// Write implements Transport.
func (t *HTTPTransport) Write(p []byte) (int, error) {
	t.Flush()
	return t.w.Write(p)
}

// Flush commits the status line and headers if nothing was written yet.
func (t *HTTPTransport) Flush() {
	if t.written {
		return
	}
	t.written = true
	t.w.WriteHeader(t.status)
}

// Status returns the buffered or committed status code.
func (t *HTTPTransport) Status() int {
	return t.status
}

// Written reports whether the status line has been committed.
func (t *HTTPTransport) Written() bool {
	return t.written
}
