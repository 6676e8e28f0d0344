// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package uri

import "strings"

// RemoveDotSegments interprets and removes the "." and ".." segments of a
// path per RFC 3986 Section 5.2.4.
//
// This is the simplified stack walk most HTTP libraries use rather than the
// full RFC state machine: ".." above the root is absorbed, empty segments
// collapse, and a leading or trailing "/" on the input is preserved.
//
//	RemoveDotSegments("/a/b/../c")  // "/a/c"
//	RemoveDotSegments("/a/../../b") // "/b"
//	RemoveDotSegments("a/./b/")     // "a/b/"
func RemoveDotSegments(path string) string {
	if path == "" || path == "/" {
		return path
	}

	input := strings.Split(path, "/")
	if input[0] == "" {
		input = input[1:]
	}

	output := make([]string, 0, len(input))
	for _, segment := range input {
		switch segment {
		case "..":
			if len(output) > 0 {
				output = output[:len(output)-1]
			}
		case ".", "":
		default:
			output = append(output, segment)
		}
	}

	cleaned := strings.Trim(strings.Join(output, "/"), "/ ")

	if strings.HasPrefix(path, "/") {
		cleaned = "/" + cleaned
	}

	if cleaned != "/" && strings.HasSuffix(path, "/") {
		cleaned += "/"
	}

	return cleaned
}

// splitSegments returns the non-empty "/"-separated elements of path.
func splitSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
