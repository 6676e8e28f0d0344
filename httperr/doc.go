// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes.

Errors raised by the uri and response packages (invalid status codes,
rejected redirect targets, redirect cycles, out-of-range segments) are
plain sentinels wrapped in a CodedError at the point of failure. Callers
match the kind with errors.Is and read the status with Code.

# Basic Usage

	// Create a new error with a status code
	err := httperr.New("resource not found", http.StatusNotFound)

	// Attach a status code and a detail to a sentinel
	err = httperr.Wrapf(ErrSegmentOutOfRange, http.StatusNotFound, "segment %d", n)

# Extracting Status Codes

	code := httperr.Code(err)
	// Returns the code if err contains a CodedError
	// Returns http.StatusInternalServerError (500) if no CodedError found
	// Returns http.StatusOK (200) if err is nil

# Error Wrapping

	if errors.Is(err, uri.ErrSegmentOutOfRange) {
		// handle specific error
	}

	var coded *httperr.CodedError
	if errors.As(err, &coded) {
		logger.Warn("request failed", "code", coded.HTTPCode(), "error", coded)
	}
*/
package httperr
