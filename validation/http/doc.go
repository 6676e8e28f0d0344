// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package http provides security-focused validation functions for HTTP headers
and redirect targets.

Responses write caller-supplied header values and Location targets straight
to the transport, so this package guards against HTTP header injection
(CRLF injection) and malformed targets.

# Header Validation

Validate HTTP header names and values per RFC 7230:

	if err := http.ValidateHeaderName("X-Custom-Header"); err != nil {
		// Handle invalid header name
	}

	if err := http.ValidateHeaderValue("no-cache"); err != nil {
		// Handle invalid header value
	}

Values that might carry stray control characters can be cleaned instead:

	value = http.SanitizeHeaderValue("text/html\r\nX-Injected: 1")
	// "text/htmlX-Injected: 1"

# Redirect Target Validation

	if err := http.ValidateRedirectTarget("https://example.com/login"); err != nil {
		// refuse to redirect
	}

Redirect targets must:
  - Include a scheme
  - Include a host (except opaque URIs such as mailto: and file URIs)
  - Contain no whitespace or control characters
  - Stay below MaxRedirectTargetLength
*/
package http
