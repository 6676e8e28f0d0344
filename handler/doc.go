// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package handler hosts request handlers on net/http.

Every request gets its own uri.URI and response.Response, built from the
configuration given to New. The handler function returns when it is done;
response.ErrHalt from a terminal operation counts as success:

	cfg, err := config.LoadDefault()
	if err != nil {
	    return err
	}

	h, err := handler.New(cfg, func(c *handler.Context) error {
	    id, err := c.URI.Segment(2, "")
	    if err != nil {
	        return err // 404
	    }
	    return c.Response.OutJSON(map[string]string{"id": id}, http.StatusOK, "")
	})
	if err != nil {
	    return err
	}
	http.ListenAndServe(":8080", h)

Errors other than ErrHalt are answered with httperr.Code(err) and the reason
phrase of that status, unless a body was already written. Panics are
recovered and answered with 500.
*/
package handler
