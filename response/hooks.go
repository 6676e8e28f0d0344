// SPDX-FileCopyrightText: Copyright 2026 The axm-framework Authors
// SPDX-License-Identifier: Apache-2.0

package response

//go:generate mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks Events RedirectPolicy

// Names of the events fired around every redirect.
const (
	EventBeforeRedirect = "beforeRedirect"
	EventAfterRedirect  = "afterRedirect"
)

// Events receives the redirect hooks. Trigger is called synchronously.
type Events interface {
	Trigger(name string)
}

// EventsFunc adapts a function to Events.
type EventsFunc func(name string)

// Trigger implements Events.
func (f EventsFunc) Trigger(name string) {
	f(name)
}

// RedirectPolicy decides whether a validated absolute redirect target may
// be emitted. *policy.Policy implements it.
type RedirectPolicy interface {
	Allowed(target string) (bool, error)
}
