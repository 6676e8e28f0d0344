// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package uri

import (
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request carries the raw request data the transport layer declared.
// It is passed explicitly so nothing in this package reads ambient state.
type Request struct {
	// RequestURI is the raw request target, such as "/app/users/7?tab=posts".
	RequestURI string

	// RawQuery overrides the query portion of RequestURI when non-empty.
	RawQuery string

	// Scheme is the transport-declared scheme ("http" or "https").
	Scheme string

	// Host and Port are the declared host and port. Port 0 means absent.
	Host string
	Port int

	// Protocol is the request protocol, such as "HTTP/1.1".
	Protocol string
}

// RequestFromHTTP collects the request data of r.
func RequestFromHTTP(r *http.Request) Request {
	req := Request{
		RequestURI: r.RequestURI,
		Scheme:     "http",
		Host:       r.Host,
		Protocol:   r.Proto,
	}

	if req.RequestURI == "" && r.URL != nil {
		req.RequestURI = r.URL.RequestURI()
	}
	if r.URL != nil {
		req.RawQuery = r.URL.RawQuery
	}
	if r.TLS != nil {
		req.Scheme = "https"
	}

	if host, port, err := net.SplitHostPort(r.Host); err == nil {
		req.Host = host
		if p, err := strconv.Atoi(port); err == nil {
			req.Port = p
		}
	} else if strings.HasPrefix(r.Host, "[") && strings.HasSuffix(r.Host, "]") {
		req.Host = r.Host[1 : len(r.Host)-1]
	}

	return req
}

// query returns the raw query string of the request.
func (r Request) query() string {
	if r.RawQuery != "" {
		return r.RawQuery
	}
	if _, q, ok := strings.Cut(r.RequestURI, "?"); ok {
		q, _, _ = strings.Cut(q, "#")
		return q
	}
	return ""
}

// RequestPath returns the application-relative path of a raw request
// target. The query and fragment are discarded, basePath is stripped when
// the path starts with it on a segment boundary, surrounding slashes are
// trimmed, and a single leading "/" is added. It never fails: an empty
// target yields "/".
//
//	RequestPath("/app/users/7/?tab=posts", "/app") // "/users/7"
func RequestPath(requestURI, basePath string) string {
	path, _, _ := strings.Cut(requestURI, "?")
	path, _, _ = strings.Cut(path, "#")

	// absolute-form request targets carry scheme and authority
	if path != "" && !strings.HasPrefix(path, "/") {
		if parsed, err := url.Parse(path); err == nil && parsed.Scheme != "" {
			path = parsed.EscapedPath()
		}
	}

	if base := strings.TrimRight(basePath, "/"); base != "" {
		if path == base {
			path = ""
		} else if strings.HasPrefix(path, base+"/") {
			path = path[len(base):]
		}
	}

	return "/" + strings.Trim(path, "/")
}
