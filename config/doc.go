// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the settings of the URI and response layers from a
YAML file and the environment.

The file lives at $XDG_CONFIG_HOME/axm/httpcore.yaml by default (see
DefaultPath) and is validated against an embedded JSON schema before it is
decoded:

	forceGlobalSecureRequests: true
	basePath: /app
	maxRedirects: 20
	redirectPolicy: target.host == "example.com"
	log:
	  format: text
	  level: debug

Environment variables override the file; see ApplyEnv. LoadDefault combines
both and tolerates a missing file.

A loaded Config feeds the other packages directly through URIOptions,
Policy and Logger.
*/
package config
