// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package policy compiles CEL expressions that decide whether a redirect
target is allowed.

An expression sees a single variable, target, holding the components of the
absolute redirect URL:

	target.host == "example.com" || target.host.endsWith(".example.com")

	target.scheme == "https" && target.port == 443

	!("next" in target.query)

See Target for the full list of fields.

# Usage

Compile the expression once, typically from configuration, and evaluate it
per redirect:

	p, err := policy.Compile(`target.host == "example.com"`)
	if err != nil {
	    var ce *policy.CompileError
	    if errors.As(err, &ce) {
	        log.Println(ce.AsJSON())
	    }
	    return err
	}

	ok, err := p.Allowed("https://example.com/next")

A *Policy satisfies response.RedirectPolicy.

# Limits

Expressions longer than DefaultMaxExpressionLength are rejected at compile
time and every evaluation runs under DefaultCostLimit. Both can be changed
with WithMaxExpressionLength and WithCostLimit.
*/
package policy
