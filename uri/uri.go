// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

// Package uri decomposes, normalizes and rebuilds request URIs.
package uri

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/axm-framework/httpcore/httperr"
)

// DefaultScheme is the scheme assumed when none is known.
const DefaultScheme = "http"

var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ftp":   21,
	"sftp":  22,
}

// DefaultPort returns the well-known port of scheme.
func DefaultPort(scheme string) (int, bool) {
	port, ok := defaultPorts[strings.ToLower(scheme)]
	return port, ok
}

// SegmentBounds selects how Segment treats an index one past the last segment.
type SegmentBounds int

const (
	// SegmentBoundsStrict reports every index outside [1, TotalSegments()]
	// as out of range.
	SegmentBoundsStrict SegmentBounds = iota

	// SegmentBoundsLegacy only reports indexes beyond TotalSegments()+1 as
	// out of range; the index right after the last segment and indexes
	// below 1 fall through to the default value. This matches the
	// behavior older applications were written against.
	SegmentBoundsLegacy
)

// URI is one decomposed request or constructed URI.
//
// A URI is owned by a single request and is not safe for concurrent use:
// ShowPassword and Authority mutate the one-shot password flag.
type URI struct {
	req Request

	scheme   string
	user     string
	password string
	host     string
	port     int
	path     string
	query    url.Values
	fragment string

	segments    []string
	requestPath string

	basePath     string
	forceSecure  bool
	silent       bool
	bounds       SegmentBounds
	showPassword bool
}

// Option configures a URI at construction.
type Option func(*URI)

// WithBasePath sets the rewrite base stripped from raw request paths.
func WithBasePath(base string) Option {
	return func(u *URI) {
		u.basePath = base
	}
}

// WithForceSecure makes Scheme report "https" regardless of the stored scheme.
func WithForceSecure(force bool) Option {
	return func(u *URI) {
		u.forceSecure = force
	}
}

// WithSilent makes out-of-range segment lookups return the default value
// instead of ErrSegmentOutOfRange.
func WithSilent() Option {
	return func(u *URI) {
		u.silent = true
	}
}

// WithSegmentBounds selects the segment range check. The default is
// SegmentBoundsStrict.
func WithSegmentBounds(b SegmentBounds) Option {
	return func(u *URI) {
		u.bounds = b
	}
}

// New builds the URI of an incoming request. Host and port are left unset
// so they resolve to the declared values of req.
func New(req Request, opts ...Option) *URI {
	u := &URI{req: req}
	for _, opt := range opts {
		opt(u)
	}

	u.scheme = req.Scheme
	if u.scheme == "" {
		u.scheme = DefaultScheme
	}

	// query parsing is best effort: malformed pairs are dropped
	u.query, _ = url.ParseQuery(req.query())

	u.requestPath = RequestPath(req.RequestURI, u.basePath)
	u.path = RemoveDotSegments(u.requestPath)
	u.segments = splitSegments(u.path)

	return u
}

// Parse decomposes raw into a URI. The path is cleaned with
// RemoveDotSegments. A raw string without a scheme gets DefaultScheme.
func Parse(raw string, opts ...Option) (*URI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, httperr.Wrapf(ErrInvalidURI, http.StatusBadRequest, "%v", err)
	}

	u := &URI{}
	for _, opt := range opts {
		opt(u)
	}

	u.scheme = strings.ToLower(parsed.Scheme)
	if u.scheme == "" {
		u.scheme = DefaultScheme
	}

	if parsed.User != nil {
		u.user = parsed.User.Username()
		u.password, _ = parsed.User.Password()
	}

	u.host = parsed.Hostname()
	if p := parsed.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port > 65535 {
			return nil, httperr.Wrapf(ErrInvalidURI, http.StatusBadRequest, "invalid port %q", p)
		}
		u.port = port
	}

	path := parsed.EscapedPath()
	if parsed.Opaque != "" {
		path = parsed.Opaque
	}
	u.path = RemoveDotSegments(path)
	u.requestPath = u.path
	u.segments = splitSegments(u.path)

	u.query = parsed.Query()
	u.fragment = parsed.Fragment

	return u, nil
}

// Scheme returns "https" when secure requests are forced, otherwise the
// stored scheme, otherwise the transport-declared one.
func (u *URI) Scheme() string {
	if u.forceSecure {
		return "https"
	}
	if u.scheme != "" {
		return u.scheme
	}
	return u.req.Scheme
}

// Host returns the stored host, falling back to the declared request host.
func (u *URI) Host() string {
	if u.host != "" {
		return u.host
	}
	return u.req.Host
}

// Port returns the stored port, falling back to the declared request port.
// Zero means no port is known.
func (u *URI) Port() int {
	if u.port != 0 {
		return u.port
	}
	return u.req.Port
}

// Path returns the normalized path.
func (u *URI) Path() string {
	return u.path
}

// Fragment returns the fragment without the leading "#".
func (u *URI) Fragment() string {
	return u.fragment
}

// RequestPath returns the cleaned request path before dot-segment
// removal, with the base path stripped.
func (u *URI) RequestPath() string {
	return u.requestPath
}

// ShowPassword arms the one-shot flag that lets the next UserInfo or
// Authority call include the password. Authority always disarms it.
func (u *URI) ShowPassword(show bool) *URI {
	u.showPassword = show
	return u
}

// UserInfo returns "user", or "user:password" while the show-password flag
// is armed. It returns "" when there is no user.
func (u *URI) UserInfo() string {
	return u.userInfo(u.showPassword)
}

func (u *URI) userInfo(show bool) string {
	if u.user == "" {
		return ""
	}
	if show && u.password != "" {
		return url.UserPassword(u.user, u.password).String()
	}
	return url.User(u.user).String()
}

// Authority renders "[userinfo@]host[:port]", or "" without a host. The
// port is left out when ignorePort is set or when it is the default port of
// the scheme.
//
// Postcondition: the show-password flag is false after every call.
func (u *URI) Authority(ignorePort bool) string {
	show := u.showPassword
	u.showPassword = false
	return u.authority(ignorePort, show)
}

func (u *URI) authority(ignorePort, show bool) string {
	host := strings.TrimSuffix(strings.TrimPrefix(u.Host(), "["), "]")
	if host == "" {
		return ""
	}

	port := u.Port()
	defaultPort, _ := DefaultPort(u.Scheme())

	var authority string
	if port != 0 && !ignorePort && port != defaultPort {
		authority = net.JoinHostPort(host, strconv.Itoa(port))
	} else if strings.Contains(host, ":") {
		authority = "[" + host + "]"
	} else {
		authority = host
	}

	if info := u.userInfo(show); info != "" {
		authority = info + "@" + authority
	}

	return authority
}

// Query renders the query mapping after applying opts. See Except and Only.
func (u *URI) Query(opts ...QueryOption) string {
	return BuildQuery(u.QueryValues(opts...))
}

// QueryValues returns a copy of the query mapping after applying opts.
func (u *URI) QueryValues(opts ...QueryOption) url.Values {
	return filterQuery(u.query, opts)
}

// Segments returns a copy of the path segments.
func (u *URI) Segments() []string {
	return append([]string(nil), u.segments...)
}

// TotalSegments returns the number of path segments.
func (u *URI) TotalSegments() int {
	return len(u.segments)
}

// Segment returns the nth path segment, counting from 1. Out-of-range
// lookups fail with ErrSegmentOutOfRange unless the URI is silent, in which
// case def is returned. WithSegmentBounds selects how the index right after
// the last segment is treated.
func (u *URI) Segment(n int, def string) (string, error) {
	idx := n - 1
	count := len(u.segments)

	var outOfRange bool
	switch u.bounds {
	case SegmentBoundsLegacy:
		outOfRange = idx > count
	default:
		outOfRange = idx < 0 || idx >= count
	}

	if outOfRange && !u.silent {
		return "", httperr.Wrapf(ErrSegmentOutOfRange, http.StatusNotFound,
			"segment %d of %d", n, count)
	}

	if idx < 0 || idx >= count {
		return def, nil
	}
	return u.segments[idx], nil
}

// URL rebuilds the full URI string from the stored components.
func (u *URI) URL() string {
	return CreateURIString(u.Scheme(), u.Authority(false), u.path, u.query, u.fragment)
}

// CreateNewURL rebuilds the URI with path in place of the stored path.
// The path is cleaned with RemoveDotSegments and rooted when an authority
// is present.
func (u *URI) CreateNewURL(path string) string {
	authority := u.Authority(false)

	p := RemoveDotSegments(path)
	if authority != "" && p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return CreateURIString(u.Scheme(), authority, p, u.query, u.fragment)
}

// String implements fmt.Stringer. It never reveals the password.
func (u *URI) String() string {
	u.showPassword = false
	return u.URL()
}

// GoString keeps passwords out of %#v output. A pending ShowPassword is
// left armed.
func (u *URI) GoString() string {
	s := CreateURIString(u.Scheme(), u.authority(false, false), u.path, u.query, u.fragment)
	return fmt.Sprintf("uri.URI(%q)", s)
}

// CreateURIString concatenates "scheme://" + host + path, then "?query"
// when the query renders non-empty and "#fragment" (percent-encoded) when
// fragment is non-empty. An empty host is not rejected: the result has the
// "scheme://path" form. Without a scheme a network-path reference
// ("//host/path") or the bare path is produced.
func CreateURIString(scheme, host, path string, query url.Values, fragment string) string {
	var b strings.Builder

	switch {
	case scheme != "":
		b.WriteString(scheme)
		b.WriteString("://")
	case host != "":
		b.WriteString("//")
	}

	b.WriteString(host)
	b.WriteString(path)

	if q := BuildQuery(query); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}

	if fragment != "" {
		b.WriteByte('#')
		b.WriteString(Escape(fragment))
	}

	return b.String()
}
