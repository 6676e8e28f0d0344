// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

import "strings"

// Content types accepted for response bodies.
const (
	MediaTypeText       = "text/plain"
	MediaTypeHTML       = "text/html"
	MediaTypeCSS        = "text/css"
	MediaTypeCSV        = "text/csv"
	MediaTypeXML        = "application/xml"
	MediaTypeJSON       = "application/json"
	MediaTypeJavaScript = "application/javascript"
	MediaTypePDF        = "application/pdf"
	MediaTypeOctet      = "application/octet-stream"
)

// DefaultCharset is used when a body is emitted without a charset.
const DefaultCharset = "utf-8"

// mediaTypes maps every accepted spelling to its content type.
var mediaTypes = map[string]string{
	"text":  MediaTypeText,
	"txt":   MediaTypeText,
	"plain": MediaTypeText,
	"html":  MediaTypeHTML,
	"css":   MediaTypeCSS,
	"csv":   MediaTypeCSV,
	"xml":   MediaTypeXML,
	"json":  MediaTypeJSON,
	"js":    MediaTypeJavaScript,
	"pdf":   MediaTypePDF,
	"bin":   MediaTypeOctet,

	MediaTypeText:       MediaTypeText,
	MediaTypeHTML:       MediaTypeHTML,
	MediaTypeCSS:        MediaTypeCSS,
	MediaTypeCSV:        MediaTypeCSV,
	MediaTypeXML:        MediaTypeXML,
	"text/xml":          MediaTypeXML,
	MediaTypeJSON:       MediaTypeJSON,
	MediaTypeJavaScript: MediaTypeJavaScript,
	"text/javascript":   MediaTypeJavaScript,
	MediaTypePDF:        MediaTypePDF,
	MediaTypeOctet:      MediaTypeOctet,
}

// ResolveMediaType maps a short alias ("html", "json") or a full content
// type to the content type the response emits. Unknown types report false
// and the response is sent without a Content-Type.
func ResolveMediaType(mimeType string) (string, bool) {
	mt, ok := mediaTypes[strings.ToLower(strings.TrimSpace(mimeType))]
	return mt, ok
}

func contentType(mediaType, charset string) string {
	if charset == "" {
		return mediaType
	}
	return mediaType + ";charset=" + charset
}
