// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/axm-framework/httpcore/uri"
)

const (
	// DefaultMaxExpressionLength is the longest expression Compile accepts.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit caps the runtime cost of one evaluation.
	DefaultCostLimit = 100000

	// TargetVariable is the name under which the redirect target is exposed
	// to expressions.
	TargetVariable = "target"
)

// The environment only declares the target variable, so one instance is
// shared by every policy.
var (
	envOnce sync.Once
	env     *cel.Env
	envErr  error
)

func targetEnv() (*cel.Env, error) {
	envOnce.Do(func() {
		env, envErr = cel.NewEnv(
			cel.Variable(TargetVariable, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return env, envErr
}

// Policy is a compiled redirect allow-policy. It is safe for concurrent use.
type Policy struct {
	source  string
	program cel.Program
}

// Option configures compilation limits.
type Option func(*limits)

type limits struct {
	maxLength int
	costLimit uint64
}

// WithMaxExpressionLength overrides DefaultMaxExpressionLength.
func WithMaxExpressionLength(n int) Option {
	return func(l *limits) {
		l.maxLength = n
	}
}

// WithCostLimit overrides DefaultCostLimit.
func WithCostLimit(n uint64) Option {
	return func(l *limits) {
		l.costLimit = n
	}
}

func newLimits(opts []Option) limits {
	l := limits{maxLength: DefaultMaxExpressionLength, costLimit: DefaultCostLimit}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Compile parses and type-checks expr and returns a Policy ready for
// evaluation. A rejected expression yields a *CompileError, or
// ErrInvalidExpression when it is too long.
func Compile(expr string, opts ...Option) (*Policy, error) {
	l := newLimits(opts)

	ast, err := check(expr, l)
	if err != nil {
		return nil, err
	}

	e, err := targetEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	program, err := e.Program(ast, cel.CostLimit(l.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Policy{source: expr, program: program}, nil
}

// Check validates expr without building a program. It is meant for
// configuration validation at startup.
func Check(expr string, opts ...Option) error {
	_, err := check(expr, newLimits(opts))
	return err
}

func check(expr string, l limits) (*cel.Ast, error) {
	if len(expr) > l.maxLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrInvalidExpression, len(expr), l.maxLength)
	}

	e, err := targetEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := e.Parse(expr)
	if issues.Err() != nil {
		return nil, newCompileError(StageParse, expr, issues)
	}

	checked, issues := e.Check(parsed)
	if issues.Err() != nil {
		return nil, newCompileError(StageCheck, expr, issues)
	}

	return checked, nil
}

// Source returns the expression the policy was compiled from.
func (p *Policy) Source() string {
	return p.source
}

// Allowed evaluates the policy against target, an absolute URL.
func (p *Policy) Allowed(target string) (bool, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	out, _, err := p.program.Eval(map[string]any{TargetVariable: Target(parsed)})
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	allowed, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrInvalidResult, out.Value())
	}
	return allowed, nil
}

// Target returns the components of u the way expressions see them:
//
//	target.url       the full URL string
//	target.scheme    lower-case scheme
//	target.host      host without port
//	target.port      explicit port, or the scheme's default port, or 0
//	target.path      path, "/" when empty
//	target.query     map of key to list of values
//	target.fragment  fragment without "#"
func Target(u *url.URL) map[string]any {
	var port int64
	if p, err := strconv.ParseInt(u.Port(), 10, 64); err == nil {
		port = p
	} else if p, ok := uri.DefaultPort(u.Scheme); ok {
		port = int64(p)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	query := make(map[string]any)
	for k, v := range u.Query() {
		query[k] = append([]string(nil), v...)
	}

	return map[string]any{
		"url":      u.String(),
		"scheme":   u.Scheme,
		"host":     u.Hostname(),
		"port":     port,
		"path":     path,
		"query":    query,
		"fragment": u.Fragment,
	}
}
