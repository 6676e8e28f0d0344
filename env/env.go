// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	// Getenv returns the value of key, or "" when unset.
	Getenv(key string) string
	// LookupEnv returns the value of key and whether it was set at all.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv reports the value of the environment variable named by the key
// and whether it is present, so an explicitly empty override can be told
// apart from an unset one.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed map. It is handy for wiring
// configuration from sources other than the process environment.
type MapReader map[string]string

// Getenv returns the mapped value for key.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv returns the mapped value for key and whether it exists.
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
