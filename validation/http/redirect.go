// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// MaxRedirectTargetLength is the maximum allowed length for a redirect target.
// This limit provides DoS protection during URI parsing.
const MaxRedirectTargetLength = 2048

// scriptSchemes execute in the browser instead of navigating.
var scriptSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
}

// ValidateRedirectTarget validates that target is a syntactically valid
// absolute URL suitable for a Location header.
//
// A valid target must:
//   - Not exceed MaxRedirectTargetLength
//   - Contain no whitespace or control characters (header injection)
//   - Include a scheme
//   - Include a host, unless it is an opaque URI (mailto:, urn:) or uses
//     the file scheme
//   - Not use a script scheme (javascript:, vbscript:, data:)
//
// Fragments are allowed.
func ValidateRedirectTarget(target string) error {
	if target == "" {
		return fmt.Errorf("redirect target cannot be empty")
	}

	if len(target) > MaxRedirectTargetLength {
		return fmt.Errorf("redirect target too long (maximum %d characters)", MaxRedirectTargetLength)
	}

	if !httpguts.ValidHeaderFieldValue(target) || strings.ContainsAny(target, " \t") {
		return fmt.Errorf("redirect target contains whitespace or control characters")
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme == "" {
		return fmt.Errorf("redirect target must be an absolute URL with a scheme: %s", target)
	}

	if scriptSchemes[strings.ToLower(parsed.Scheme)] {
		return fmt.Errorf("redirect target must not use the %s scheme", parsed.Scheme)
	}

	if parsed.Opaque == "" && parsed.Host == "" && parsed.Scheme != "file" {
		return fmt.Errorf("redirect target must include a host: %s", target)
	}

	return nil
}
