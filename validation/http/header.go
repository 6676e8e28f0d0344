// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

// Package http provides validation functions for HTTP headers and redirect targets.
package http

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	// MaxHeaderNameLength is the longest header name accepted.
	MaxHeaderNameLength = 256

	// MaxHeaderValueLength is the longest header value accepted (common HTTP server limit).
	MaxHeaderValueLength = 8192
)

// ValidateHeaderName validates that a string is a valid HTTP header name per RFC 7230.
// It checks for CRLF injection, control characters, and ensures RFC token compliance.
func ValidateHeaderName(name string) error {
	if name == "" {
		return fmt.Errorf("header name cannot be empty")
	}

	if len(name) > MaxHeaderNameLength {
		return fmt.Errorf("header name exceeds maximum length of %d bytes", MaxHeaderNameLength)
	}

	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid HTTP header name %q: contains invalid characters", name)
	}

	return nil
}

// ValidateHeaderValue validates that a string is a valid HTTP header value per RFC 7230.
// It checks for CRLF injection and control characters. Empty values are allowed.
func ValidateHeaderValue(value string) error {
	if len(value) > MaxHeaderValueLength {
		return fmt.Errorf("header value exceeds maximum length of %d bytes", MaxHeaderValueLength)
	}

	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid HTTP header value: contains control characters")
	}

	return nil
}

// SanitizeHeaderValue strips every byte that ValidateHeaderValue would
// reject (CR, LF, NUL, DEL and the other C0 controls except horizontal tab)
// and trims the surrounding whitespace. The result always passes
// ValidateHeaderValue unless it is too long.
func SanitizeHeaderValue(value string) string {
	if httpguts.ValidHeaderFieldValue(value) {
		return strings.TrimSpace(value)
	}

	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '\t' || (c >= 0x20 && c != 0x7f) {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}
