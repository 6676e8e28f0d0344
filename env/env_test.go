// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader(t *testing.T) {
	const testKey = "AXM_HTTPCORE_TEST_ENV_VARIABLE"
	t.Setenv(testKey, "test_value_123")

	reader := &OSReader{}

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{name: "existing environment variable", key: testKey, want: "test_value_123", wantOK: true},
		{name: "non-existing environment variable", key: "AXM_HTTPCORE_NONEXISTENT_12345"},
		{name: "empty key", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reader.Getenv(tt.key))

			got, ok := reader.LookupEnv(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestOSReader_LookupEnvDistinguishesEmpty(t *testing.T) {
	const testKey = "AXM_HTTPCORE_TEST_EMPTY_VARIABLE"
	t.Setenv(testKey, "")

	got, ok := (&OSReader{}).LookupEnv(testKey)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	reader := MapReader{"AXM_BASE_PATH": "/app", "AXM_EMPTY": ""}

	assert.Equal(t, "/app", reader.Getenv("AXM_BASE_PATH"))
	assert.Equal(t, "", reader.Getenv("AXM_MISSING"))

	v, ok := reader.LookupEnv("AXM_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = reader.LookupEnv("AXM_MISSING")
	assert.False(t, ok)
}

func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
}
