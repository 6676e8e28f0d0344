// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strconv"

	"github.com/axm-framework/httpcore/env"
)

// Environment variables that override file settings.
const (
	EnvForceSecureRequests = "AXM_FORCE_SECURE_REQUESTS"
	EnvBasePath            = "AXM_BASE_PATH"
	EnvMaxRedirects        = "AXM_MAX_REDIRECTS"
	EnvLogLevel            = "AXM_LOG_LEVEL"
)

// ApplyEnv overrides c with the variables r reports as set. An explicitly
// empty AXM_BASE_PATH clears the base path; the other variables must hold a
// valid value when set.
func (c *Config) ApplyEnv(r env.Reader) error {
	if v, ok := r.LookupEnv(EnvForceSecureRequests); ok {
		force, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvForceSecureRequests, v)
		}
		c.ForceSecureRequests = force
	}

	if v, ok := r.LookupEnv(EnvBasePath); ok {
		c.BasePath = v
	}

	if v, ok := r.LookupEnv(EnvMaxRedirects); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q is not a non-negative integer", ErrInvalidConfig, EnvMaxRedirects, v)
		}
		c.MaxRedirects = n
	}

	if v, ok := r.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}

	return c.Validate()
}
