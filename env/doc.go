// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so configuration overrides can be injected and tested in isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value, ok := reader.LookupEnv("AXM_BASE_PATH")

MapReader serves fixed values, which is useful when overrides come from
somewhere other than the process environment:

	reader := env.MapReader{"AXM_FORCE_SECURE_REQUESTS": "true"}

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("AXM_MAX_REDIRECTS").Return("10", true)

	err := cfg.ApplyEnv(mock)
*/
package env
