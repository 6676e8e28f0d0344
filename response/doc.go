// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package response tracks the status of one outgoing HTTP response and emits
its redirects, headers and body through a Transport.

# Status

A Response starts at 200 OK. SetStatusCode and SetStatus accept codes in
[100, 599]; the reason phrase comes from the RFC 2616 table unless one is
given:

	r := response.New(response.NewHTTPTransport(w))
	if err := r.SetStatusCode(http.StatusNotFound); err != nil {
	    return err
	}
	r.Message() // "Not Found"

# Redirects

Redirect validates that the target is an absolute URL, optionally checks it
against a RedirectPolicy, and counts it against the redirect budget
(DefaultMaxRedirects unless WithMaxRedirects is given). The budget guards
against redirect cycles within one response:

	err := r.Redirect("https://example.com/login")
	switch {
	case errors.Is(err, response.ErrRedirectCycleDetected):
	    // more than the allowed number of redirects
	case errors.Is(err, response.ErrInvalidRedirectTarget):
	    // not an absolute URL
	}

The Events receiver gets EventBeforeRedirect and EventAfterRedirect around
every redirect. An empty target reloads the current page.

# Terminal operations

Reload, Back, Send, Output and OutJSON write the body and return ErrHalt.
The caller stops processing and returns the error to the hosting boundary,
which treats it as normal completion:

	if err := r.OutJSON(payload, http.StatusOK, ""); err != nil {
	    return err // ErrHalt on success
	}

Any write after a terminal operation fails with ErrResponseFinished.

# Errors

Every failure wraps one of the sentinel errors of this package (or
uri.ErrSegmentOutOfRange) together with the status it should be reported
with; use errors.Is to match and httperr.Code to read the status.
*/
package response
