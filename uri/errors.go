// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package uri

import "errors"

var (
	// ErrSegmentOutOfRange indicates a non-silent segment lookup past the
	// end of the path.
	ErrSegmentOutOfRange = errors.New("segment out of range")

	// ErrInvalidURI indicates a string that could not be decomposed into URI components.
	ErrInvalidURI = errors.New("invalid URI")
)
