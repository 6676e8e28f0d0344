// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

// Package path provides validation functions for configured URL paths.
package path

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxBasePathLength is the longest base path accepted.
const MaxBasePathLength = 1024

// segment characters per RFC 3986 §3.3 (pchar), percent signs included
var validBasePathRegex = regexp.MustCompile(`^(/[A-Za-z0-9._~!$&'()*+,;=:@%-]+)*/?$`)

// ValidateBasePath validates a rewrite base such as "/app" or "/shop/v2/".
// The empty string means no base and is accepted.
// It rejects relative paths, query and fragment markers, dot segments and
// anything outside the RFC 3986 path characters.
func ValidateBasePath(p string) error {
	if p == "" {
		return nil
	}

	if len(p) > MaxBasePathLength {
		return fmt.Errorf("base path exceeds maximum length of %d bytes", MaxBasePathLength)
	}

	if strings.Contains(p, "\x00") {
		return fmt.Errorf("base path cannot contain null bytes")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("base path must start with '/': %q", p)
	}

	if strings.ContainsAny(p, "?#") {
		return fmt.Errorf("base path cannot contain a query or fragment: %q", p)
	}

	if !validBasePathRegex.MatchString(p) {
		return fmt.Errorf("base path can only contain RFC 3986 path characters and single slashes: %q", p)
	}

	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if seg == "." || seg == ".." {
			return fmt.Errorf("base path cannot contain dot segments: %q", p)
		}
	}

	return nil
}
