// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/axm-framework/httpcore/httperr"
	validation "github.com/axm-framework/httpcore/validation/http"
)

// SetHeader sets the status to code and appends every header in headers,
// in name order. Existing values are kept. Values are stripped of control
// characters first. Nothing is emitted when any name or value is invalid.
func (r *Response) SetHeader(code int, headers map[string]string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if err := ValidateStatusCode(code); err != nil {
		return err
	}

	names := slices.Sorted(maps.Keys(headers))
	values := make([]string, len(names))
	for i, name := range names {
		if err := validation.ValidateHeaderName(name); err != nil {
			return httperr.Wrapf(ErrInvalidHeader, http.StatusInternalServerError, "%v", err)
		}
		v := validation.SanitizeHeaderValue(headers[name])
		if err := validation.ValidateHeaderValue(v); err != nil {
			return httperr.Wrapf(ErrInvalidHeader, http.StatusInternalServerError, "%s: %v", name, err)
		}
		values[i] = v
	}

	r.setStatus(code, "")
	for i, name := range names {
		r.transport.AddHeader(name, values[i])
	}
	return nil
}

// Send writes content as the body and returns ErrHalt. A string or []byte
// is written as-is, a []string or []any one value per line, anything else
// through fmt.
//
// Zero values select the defaults: code 200, mimeType text/plain and
// charset utf-8. A mimeType outside the allow-list (see ResolveMediaType)
// is not an error; the body is sent without a Content-Type.
func (r *Response) Send(content any, code int, mimeType, charset string) error {
	if code == 0 {
		code = http.StatusOK
	}
	return r.send(render(content), code, mimeType, charset)
}

// Output is Send for string content with a default code of 204.
func (r *Response) Output(content string, code int, mimeType, charset string) error {
	if code == 0 {
		code = http.StatusNoContent
	}
	return r.send(content, code, mimeType, charset)
}

func (r *Response) send(body string, code int, mimeType, charset string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if err := ValidateStatusCode(code); err != nil {
		return err
	}

	if mimeType == "" {
		mimeType = MediaTypeText
	}
	if charset == "" {
		charset = DefaultCharset
	}

	r.setStatus(code, "")
	if mt, ok := ResolveMediaType(mimeType); ok {
		r.transport.SetHeader("Content-Type", contentType(mt, charset))
	} else {
		r.logger.Debug("unknown media type, sending without Content-Type", "mime_type", mimeType)
	}

	return r.finish([]byte(body))
}

// OutJSON writes content encoded as JSON and returns ErrHalt. A
// json.RawMessage is written unchanged after a validity check. Zero
// values select code 200 and charset utf-8. Nothing is emitted when
// encoding fails.
func (r *Response) OutJSON(content any, code int, charset string) error {
	if err := r.writable(); err != nil {
		return err
	}
	if code == 0 {
		code = http.StatusOK
	}
	if err := ValidateStatusCode(code); err != nil {
		return err
	}
	if charset == "" {
		charset = DefaultCharset
	}

	body, err := encodeJSON(content)
	if err != nil {
		return err
	}

	r.setStatus(code, "")
	r.transport.SetHeader("Content-Type", contentType(MediaTypeJSON, charset))
	return r.finish(body)
}

// ToJSON encodes v as a JSON string.
func ToJSON(v any) (string, error) {
	b, err := encodeJSON(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeJSON decodes content into generic values: objects become
// map[string]any, arrays []any and numbers float64.
func DecodeJSON(content string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, httperr.Wrapf(ErrInvalidJSONPayload, http.StatusInternalServerError, "%v", err)
	}
	return v, nil
}

func encodeJSON(v any) ([]byte, error) {
	if raw, ok := v.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, httperr.Wrapf(ErrInvalidJSONPayload, http.StatusInternalServerError,
				"raw message is not valid JSON")
		}
		return raw, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, httperr.Wrapf(ErrJSONEncoding, http.StatusInternalServerError, "%v", err)
	}
	return b, nil
}

func render(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		return strings.Join(v, "\n")
	case []any:
		lines := make([]string, len(v))
		for i, item := range v {
			lines[i] = fmt.Sprint(item)
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// bodyAllowed reports whether a response with status code may carry a body
// (RFC 9110 §15).
func bodyAllowed(code int) bool {
	switch {
	case code >= 100 && code < 200:
		return false
	case code == http.StatusNoContent, code == http.StatusNotModified:
		return false
	}
	return true
}

// finish marks the response finished, writes body and returns ErrHalt.
func (r *Response) finish(body []byte) error {
	r.finished = true

	if len(body) > 0 && !bodyAllowed(r.code) {
		r.logger.Debug("status does not allow a body, dropping it", "status", r.code, "bytes", len(body))
		body = nil
	}

	if len(body) > 0 {
		if _, err := r.transport.Write(body); err != nil {
			return fmt.Errorf("failed to write response body: %w", err)
		}
	}

	r.logger.Debug("response finished", "status", r.code, "bytes", len(body))
	return ErrHalt
}
