// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package path provides validation for the URL paths an operator configures,
such as the rewrite base stripped from every request path.

	if err := path.ValidateBasePath(cfg.BasePath); err != nil {
	    return err
	}
*/
package path
