// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for backend-delegated operations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No hidden global state beyond the diagnostics sink: the kernel is resolved
//     per call, so tests and callers can swap backends without side effects.
//   - No dead switches: each option impacts behavior and is covered by tests.
package matrix

import "github.com/katalvlaran/numla/backend"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute tolerance used by IsNearZero.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicNilKernel = "matrix: WithKernel: kernel must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	kernel backend.Kernel // DefaultKernel() when unset
	diag   Diagnostics    // nil => package-wide sink
}

// WithKernel routes delegated operations to k instead of backend.Default().
// Panics when k is nil (programmer error).
func WithKernel(k backend.Kernel) Option {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *Options) { o.kernel = k }
}

// WithDiagnostics sends this call's precondition messages to d instead of the
// package-wide sink installed by SetDiagnostics. nil restores the default.
func WithDiagnostics(d Diagnostics) Option {
	return func(o *Options) { o.diag = d }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{}
	for _, set := range user {
		set(&o)
	}
	if o.kernel == nil {
		o.kernel = backend.Default()
	}

	return o
}
