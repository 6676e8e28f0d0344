// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import (
	"fmt"
	"net/http"

	"github.com/axm-framework/httpcore/httperr"
	"github.com/axm-framework/httpcore/uri"
	validation "github.com/axm-framework/httpcore/validation/http"
)

const (
	reloadScript = "<script> location.reload();</script>"
	backScript   = "<script>history.go(-%d);</script>"
)

// Redirect emits a Location header for target. The status becomes 302
// unless a 3xx status was set beforehand. Redirect is not terminal.
//
// An empty target reloads the current page instead and returns ErrHalt.
// EventBeforeRedirect fires before anything else and EventAfterRedirect
// after the Location header or the reload script is emitted; a rejected
// target fires only the first.
func (r *Response) Redirect(target string) error {
	if err := r.writable(); err != nil {
		return err
	}

	r.trigger(EventBeforeRedirect)

	if target == "" {
		err := r.Reload()
		r.trigger(EventAfterRedirect)
		return err
	}

	if err := validation.ValidateRedirectTarget(target); err != nil {
		r.logger.Warn("rejected redirect target", "target", target, "error", err)
		return httperr.Wrapf(ErrInvalidRedirectTarget, http.StatusInternalServerError, "%v", err)
	}

	if r.policy != nil {
		allowed, err := r.policy.Allowed(target)
		if err != nil {
			r.logger.Warn("redirect policy failed", "target", target, "error", err)
			return httperr.Wrapf(ErrRedirectNotAllowed, http.StatusForbidden, "%v", err)
		}
		if !allowed {
			r.logger.Warn("redirect target denied by policy", "target", target)
			return httperr.Wrapf(ErrRedirectNotAllowed, http.StatusForbidden, "%s", target)
		}
	}

	r.redirects++
	if r.redirects > r.maxRedirects {
		r.logger.Error("redirect cycle detected",
			"target", target, "redirects", r.redirects, "max", r.maxRedirects)
		return httperr.Wrapf(ErrRedirectCycleDetected, http.StatusLoopDetected,
			"%d redirects exceed the maximum of %d", r.redirects, r.maxRedirects)
	}

	if !isRedirection(r.code) {
		r.setStatus(http.StatusFound, "")
	}
	r.transport.SetHeader("Location", target)
	r.logger.Debug("redirect issued", "target", target, "status", r.code, "redirects", r.redirects)

	r.trigger(EventAfterRedirect)
	return nil
}

// RedirectPath redirects to u rebuilt with path in place of its own path.
func (r *Response) RedirectPath(u *uri.URI, path string) error {
	return r.Redirect(u.CreateNewURL(path))
}

// Reload instructs the client to reload the current page and returns ErrHalt.
func (r *Response) Reload() error {
	r.logger.Debug("reload requested")
	return r.script(reloadScript)
}

// Back instructs the client to go pos entries back in its history and
// returns ErrHalt. Positions below 1 mean 1.
func (r *Response) Back(pos int) error {
	if pos < 1 {
		pos = 1
	}
	r.logger.Debug("history back requested", "pos", pos)
	return r.script(fmt.Sprintf(backScript, pos))
}

func (r *Response) script(body string) error {
	if err := r.writable(); err != nil {
		return err
	}
	r.transport.SetHeader("Content-Type", contentType(MediaTypeHTML, DefaultCharset))
	return r.finish([]byte(body))
}
