// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHeaderName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		// Valid cases
		{"valid simple", "Content-Type", false},
		{"valid custom", "X-Powered-By", false},
		{"valid with dots", "X.Custom.Header", false},

		// CRLF injection attacks
		{"crlf injection", "Location\r\nSet-Cookie: x=1", true},
		{"newline injection", "Location\nInjected", true},

		// Other invalid characters
		{"null byte", "Location\x00", true},
		{"contains space", "Cache Control", true},
		{"contains colon", "Location:", true},
		{"empty string", "", true},

		// Length limits
		{"too long", strings.Repeat("A", MaxHeaderNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderName(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"valid simple", "no-cache", false},
		{"valid with spaces", "text/html; charset=utf-8", false},
		{"tab allowed", "a\tb", false},
		{"empty allowed", "", false},

		{"crlf injection", "https://example.com\r\nSet-Cookie: x=1", true},
		{"null byte", "key\x00value", true},
		{"delete char", "key\x7Fvalue", true},
		{"too long", strings.Repeat("A", MaxHeaderValueLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateHeaderValue(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeHeaderValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean value unchanged", "max-age=3600", "max-age=3600"},
		{"strips crlf", "text/html\r\nX-Injected: 1", "text/htmlX-Injected: 1"},
		{"strips nul and del", "a\x00b\x7fc", "abc"},
		{"keeps tab", "a\tb", "a\tb"},
		{"trims surrounding space", "  value  ", "value"},
		{"only controls", "\r\n\x01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SanitizeHeaderValue(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, ValidateHeaderValue(got))
		})
	}
}
