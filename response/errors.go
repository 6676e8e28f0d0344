// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import "errors"

// Sentinel errors for response operations. Failures are wrapped with
// httperr so httperr.Code reports the status listed on each one.
var (
	// ErrInvalidStatusCode is returned for a status outside [100, 599]. (500)
	ErrInvalidStatusCode = errors.New("invalid HTTP status code")

	// ErrInvalidRedirectTarget is returned when a redirect target is not a
	// valid absolute URL. (500)
	ErrInvalidRedirectTarget = errors.New("invalid redirect target")

	// ErrRedirectNotAllowed is returned when the redirect policy rejects a
	// target. (403)
	ErrRedirectNotAllowed = errors.New("redirect target not allowed")

	// ErrRedirectCycleDetected is returned when one response redirects more
	// often than the configured maximum. (508)
	ErrRedirectCycleDetected = errors.New("redirect cycle detected")

	// ErrInvalidHeader is returned for a header name or value that cannot be
	// emitted. (500)
	ErrInvalidHeader = errors.New("invalid response header")

	// ErrInvalidJSONPayload is returned when content presented as encoded
	// JSON does not decode. (500)
	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	// ErrJSONEncoding is returned when a value cannot be encoded as JSON. (500)
	ErrJSONEncoding = errors.New("JSON encoding failed")

	// ErrResponseFinished is returned by every write after a terminal
	// operation. (500)
	ErrResponseFinished = errors.New("response already finished")

	// ErrHalt is returned by terminal operations (Reload, Back, Send,
	// Output, OutJSON) once the body has been written. It is a signal, not a
	// failure: the caller must stop processing the request and return it
	// up to the hosting boundary.
	ErrHalt = errors.New("response halted")
)
