// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedirectLoop = errors.New("redirect cycle detected")

func TestWithCode(t *testing.T) {
	t.Parallel()

	t.Run("wraps error with code", func(t *testing.T) {
		t.Parallel()

		err := WithCode(errRedirectLoop, http.StatusLoopDetected)
		require.NotNil(t, err)

		var coded *CodedError
		require.ErrorAs(t, err, &coded)
		assert.Equal(t, http.StatusLoopDetected, coded.HTTPCode())
		assert.Equal(t, "redirect cycle detected", coded.Error())
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, WithCode(nil, http.StatusNotFound))
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		format  string
		args    []any
		wantMsg string
	}{
		{
			name:    "formats detail after sentinel",
			code:    http.StatusLoopDetected,
			format:  "%d redirects exceed limit of %d",
			args:    []any{101, 100},
			wantMsg: "redirect cycle detected: 101 redirects exceed limit of 100",
		},
		{
			name:    "plain detail",
			code:    http.StatusInternalServerError,
			format:  "while reloading",
			wantMsg: "redirect cycle detected: while reloading",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Wrapf(errRedirectLoop, tt.code, tt.format, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, errRedirectLoop)
			assert.Equal(t, tt.code, Code(err))
		})
	}

	t.Run("returns nil for nil error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, Wrapf(nil, http.StatusNotFound, "segment %d", 4))
	})
}

func TestCode(t *testing.T) {
	t.Parallel()

	t.Run("extracts code from CodedError", func(t *testing.T) {
		t.Parallel()
		err := WithCode(errors.New("not found"), http.StatusNotFound)
		require.Equal(t, http.StatusNotFound, Code(err))
	})

	t.Run("returns 500 for error without code", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, http.StatusInternalServerError, Code(errors.New("plain error")))
	})

	t.Run("returns 200 for nil error", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, http.StatusOK, Code(nil))
	})

	t.Run("extracts code from deeply wrapped error", func(t *testing.T) {
		t.Parallel()

		baseErr := Wrapf(errRedirectLoop, http.StatusLoopDetected, "after %d hops", 3)
		wrapped1 := fmt.Errorf("redirect: %w", baseErr)
		wrapped2 := fmt.Errorf("handler: %w", wrapped1)
		require.Equal(t, http.StatusLoopDetected, Code(wrapped2))
		require.ErrorIs(t, wrapped2, errRedirectLoop)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	err := New("custom error", http.StatusForbidden)
	require.Equal(t, "custom error", err.Error())
	require.Equal(t, http.StatusForbidden, Code(err))
}
