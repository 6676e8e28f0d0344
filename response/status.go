// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import (
	"net/http"

	"github.com/axm-framework/httpcore/httperr"
)

const (
	// MinStatusCode and MaxStatusCode bound every status a response accepts.
	MinStatusCode = 100
	MaxStatusCode = 599
)

// statusMessages holds the RFC 2616 §10 reason phrases. It is never written
// after initialization.
var statusMessages = map[int]string{
	// Informational 1xx
	100: "Continue",
	101: "Switching Protocols",

	// Successful 2xx
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",

	// Redirection 3xx
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	306: "(Unused)",
	307: "Temporary Redirect",

	// Client Error 4xx
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden, You don't have permission to access this page",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Request Entity Too Large",
	414: "Request-URI Too Long",
	415: "Unsupported Media Type",
	416: "Requested Range Not Satisfiable",
	417: "Expectation Failed",

	// Server Error 5xx
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
}

// MessageFromCode returns the reason phrase of code. Unknown codes report
// false rather than an error.
func MessageFromCode(code int) (string, bool) {
	msg, ok := statusMessages[code]
	return msg, ok
}

// ValidateStatusCode fails with ErrInvalidStatusCode when code is outside
// [MinStatusCode, MaxStatusCode].
func ValidateStatusCode(code int) error {
	if code < MinStatusCode || code > MaxStatusCode {
		return httperr.Wrapf(ErrInvalidStatusCode, http.StatusInternalServerError,
			"%d is outside [%d, %d]", code, MinStatusCode, MaxStatusCode)
	}
	return nil
}

func isRedirection(code int) bool {
	return code >= 300 && code < 400
}
