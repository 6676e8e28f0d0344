// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package uri

import "net/url"

// QueryOption filters the query mapping before it is rendered.
type QueryOption func(*queryFilter)

type queryFilter struct {
	except    []string
	only      []string
	hasExcept bool
	hasOnly   bool
}

// Except drops the listed keys. When both Except and Only are given,
// Except wins and Only is ignored.
func Except(keys ...string) QueryOption {
	return func(f *queryFilter) {
		f.hasExcept = true
		f.except = append(f.except, keys...)
	}
}

// Only keeps the listed keys and drops everything else.
func Only(keys ...string) QueryOption {
	return func(f *queryFilter) {
		f.hasOnly = true
		f.only = append(f.only, keys...)
	}
}

// filterQuery returns a filtered deep copy of values.
func filterQuery(values url.Values, opts []QueryOption) url.Values {
	var f queryFilter
	for _, opt := range opts {
		opt(&f)
	}

	out := make(url.Values, len(values))

	switch {
	case f.hasExcept:
		for k, v := range values {
			out[k] = append([]string(nil), v...)
		}
		for _, k := range f.except {
			delete(out, k)
		}
	case f.hasOnly:
		for _, k := range f.only {
			if v, ok := values[k]; ok {
				out[k] = append([]string(nil), v...)
			}
		}
	default:
		for k, v := range values {
			out[k] = append([]string(nil), v...)
		}
	}

	return out
}
