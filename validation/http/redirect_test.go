// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRedirectTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		errorContains string // empty = accepted
	}{
		// Valid cases
		{name: "https URL with path", input: "https://example.com/login"},
		{name: "http URL with port", input: "http://localhost:8080/"},
		{name: "URL with query and fragment", input: "https://example.com/a?b=c#d"},
		{name: "mailto is opaque", input: "mailto:admin@example.com"},
		{name: "file URL without host", input: "file:///var/www/index.html"},

		// Invalid cases
		{name: "empty string", input: "", errorContains: "cannot be empty"},
		{name: "relative path", input: "/dashboard", errorContains: "with a scheme"},
		{name: "missing scheme", input: "example.com/path", errorContains: "with a scheme"},
		{name: "missing host", input: "https://", errorContains: "must include a host"},
		{name: "header injection", input: "https://example.com/\r\nSet-Cookie: a=b", errorContains: "control characters"},
		{name: "embedded space", input: "https://example.com/a b", errorContains: "whitespace"},
		{name: "invalid URL format", input: "ht!tp://invalid", errorContains: "malformed URL"},
		{name: "javascript scheme", input: "javascript:alert(1)", errorContains: "javascript scheme"},
		{name: "too long", input: "https://example.com/" + strings.Repeat("a", MaxRedirectTargetLength), errorContains: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRedirectTarget(tt.input)

			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
