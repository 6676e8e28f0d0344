// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/axm-framework/httpcore/env"
	"github.com/axm-framework/httpcore/logging"
	"github.com/axm-framework/httpcore/policy"
	"github.com/axm-framework/httpcore/response"
	"github.com/axm-framework/httpcore/uri"
	pathvalidation "github.com/axm-framework/httpcore/validation/path"
)

// ErrInvalidConfig is returned for configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the URI and response layers.
type Config struct {
	// ForceSecureRequests makes every request URI report https.
	ForceSecureRequests bool `yaml:"forceGlobalSecureRequests" json:"forceGlobalSecureRequests"`

	// BasePath is the rewrite base stripped from request paths.
	BasePath string `yaml:"basePath" json:"basePath"`

	// MaxRedirects is the redirect budget of one response.
	MaxRedirects int `yaml:"maxRedirects" json:"maxRedirects"`

	// RedirectPolicy is an optional CEL expression; see package policy.
	RedirectPolicy string `yaml:"redirectPolicy" json:"redirectPolicy"`

	// SilentSegments returns defaults instead of errors for out-of-range
	// segment lookups.
	SilentSegments bool `yaml:"silentSegments" json:"silentSegments"`

	// LegacySegmentBounds selects uri.SegmentBoundsLegacy.
	LegacySegmentBounds bool `yaml:"legacySegmentBounds" json:"legacySegmentBounds"`

	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	Format string `yaml:"format" json:"format"`
	Level  string `yaml:"level" json:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxRedirects: response.DefaultMaxRedirects,
		Log: LogConfig{
			Format: logging.FormatJSON.String(),
			Level:  "info",
		},
	}
}

// Path returns the config file location under configHome.
func Path(configHome string) string {
	return filepath.Join(configHome, "axm", "httpcore.yaml")
}

// DefaultPath returns the config file location using XDG base directory
// conventions.
func DefaultPath() string {
	return Path(xdg.ConfigHome)
}

// Load reads and validates the YAML file at path. Keys left out of the file
// keep their Default values.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultPath, falling back to Default when the file does
// not exist, and applies the process environment on top.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultPath())
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(&env.OSReader{}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse validates a YAML document against the embedded schema and decodes
// it over Default.
func Parse(data []byte) (Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validateSchema(doc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the schema cannot: the base path must be a
// clean absolute path, the redirect policy must compile and the log
// settings must parse.
func (c Config) Validate() error {
	if c.MaxRedirects < 0 {
		return fmt.Errorf("%w: maxRedirects must not be negative", ErrInvalidConfig)
	}
	if err := pathvalidation.ValidateBasePath(c.BasePath); err != nil {
		return fmt.Errorf("%w: basePath: %w", ErrInvalidConfig, err)
	}
	if c.RedirectPolicy != "" {
		if err := policy.Check(c.RedirectPolicy); err != nil {
			return fmt.Errorf("%w: redirectPolicy: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// URIOptions returns the uri options c selects.
func (c Config) URIOptions() []uri.Option {
	opts := []uri.Option{
		uri.WithBasePath(c.BasePath),
		uri.WithForceSecure(c.ForceSecureRequests),
	}
	if c.SilentSegments {
		opts = append(opts, uri.WithSilent())
	}
	if c.LegacySegmentBounds {
		opts = append(opts, uri.WithSegmentBounds(uri.SegmentBoundsLegacy))
	}
	return opts
}

// Policy compiles the redirect policy. It returns nil when none is set.
func (c Config) Policy() (*policy.Policy, error) {
	if c.RedirectPolicy == "" {
		return nil, nil
	}
	p, err := policy.Compile(c.RedirectPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: redirectPolicy: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Logger builds the logger c.Log describes.
func (c Config) Logger(opts ...logging.Option) (*slog.Logger, error) {
	return logging.FromConfig(c.Log.Format, c.Log.Level, opts...)
}
