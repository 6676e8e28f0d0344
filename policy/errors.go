// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for policy operations.
var (
	// ErrInvalidExpression is returned when a policy expression fails the
	// length, syntax or type check.
	ErrInvalidExpression = errors.New("invalid redirect policy expression")

	// ErrEvaluation is returned when evaluating a policy against a target fails.
	ErrEvaluation = errors.New("redirect policy evaluation failed")

	// ErrInvalidResult is returned when a policy does not produce a bool.
	ErrInvalidResult = errors.New("redirect policy returned a non-bool result")
)

// Stage names the compilation step that rejected an expression.
type Stage string

const (
	// StageParse indicates a syntax error.
	StageParse Stage = "parse"
	// StageCheck indicates a type checking error, such as an unknown variable.
	StageCheck Stage = "check"
)

// Issue is one problem found in an expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// CompileError reports why an expression was rejected, with the location of
// every issue.
type CompileError struct {
	Stage  Stage   `json:"stage"`
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues,omitempty"`

	cause error
}

func newCompileError(stage Stage, source string, issues *cel.Issues) *CompileError {
	ce := &CompileError{
		Stage:  stage,
		Source: source,
		Issues: make([]Issue, 0, len(issues.Errors())),
		cause:  fmt.Errorf("%w: %w", ErrInvalidExpression, issues.Err()),
	}
	for _, e := range issues.Errors() {
		ce.Issues = append(ce.Issues, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return ce
}

// Error implements the error interface.
func (ce *CompileError) Error() string {
	return fmt.Sprintf("redirect policy %s error in %q: %s", ce.Stage, ce.Source, ce.cause)
}

// Unwrap returns the underlying error. It matches ErrInvalidExpression.
func (ce *CompileError) Unwrap() error {
	return ce.cause
}

// AsJSON renders the error for configuration diagnostics.
func (ce *CompileError) AsJSON() string {
	b, err := json.Marshal(ce)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}
