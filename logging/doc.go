// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory with
consistent defaults for the httpcore packages and the applications that
host them.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New()
	logger.Info("redirect issued", "location", target)

# Configuration

Configuration files carry the format and level as strings:

	format, err := logging.ParseFormat(cfg.Log.Format)
	level, err := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New(logging.WithFormat(format), logging.WithLevel(level))

# Library Defaults

The response and recovery packages log through an injected logger and
fall back to [Discard], so they stay silent unless the host wires one in.

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
*/
package logging
