// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package uri decomposes, normalizes and rebuilds request URIs per RFC 3986.

# Request URIs

The hosting layer passes the raw request data explicitly; nothing here reads
process state:

	u := uri.New(uri.RequestFromHTTP(r),
		uri.WithBasePath("/app"),
		uri.WithForceSecure(cfg.ForceSecureRequests),
	)

	u.RequestPath()   // "/users/7" for "/app/users/7/?tab=posts"
	u.Segment(1, "")  // "users"
	u.Query()         // "tab=posts"

# Path Normalization

RemoveDotSegments implements RFC 3986 Section 5.2.4 the way most HTTP
libraries do:

	uri.RemoveDotSegments("/a/b/../c")  // "/a/c"
	uri.RemoveDotSegments("/a/../../b") // "/b"

# Query Filtering

Except and Only drop or keep keys before rendering. They are mutually
exclusive; Except is checked first:

	u.Query(uri.Except("page"))
	u.Query(uri.Only("q", "sort"))

# Authority and Passwords

Authority omits the port when it is the default port of the scheme. The
password is withheld unless ShowPassword armed the one-shot flag, which
Authority always disarms:

	u.ShowPassword(true).Authority(false) // "user:secret@host:8443"
	u.Authority(false)                    // "user@host:8443"

# Segments

Segments are addressed from 1. Out-of-range lookups fail with
ErrSegmentOutOfRange unless WithSilent is set:

	v, err := u.Segment(4, "x")

WithSegmentBounds(SegmentBoundsLegacy) restores the older range check
that lets the index right after the last segment fall through to the
default value.
*/
package uri
