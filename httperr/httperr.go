// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides error types that carry the HTTP status a failure
// should be reported with.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// CodedError wraps an error with an HTTP status code.
// Response and URI failures carry their status through the call stack so the
// hosting boundary can answer with a single Code(err) lookup.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code.
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Wrapf annotates err with a formatted message and an HTTP status code.
// The result matches err under errors.Is, and its message reads "err: detail".
// If err is nil, Wrapf returns nil.
func Wrapf(err error, code int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	detail := fmt.Sprintf(format, args...)
	return &CodedError{err: fmt.Errorf("%w: %s", err, detail), code: code}
}

// Code extracts the HTTP status code from an error.
// It returns http.StatusOK for nil and http.StatusInternalServerError when
// no CodedError is found in the chain.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return http.StatusInternalServerError
}

// New creates a new error with the given message and HTTP status code.
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}
