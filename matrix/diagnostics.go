// SPDX-License-Identifier: MIT
// Package matrix: diagnostics sink for failed preconditions.
//
// Purpose:
//   - Every failed precondition emits one human-readable message naming the
//     violated invariant BEFORE the error is returned to the caller.
//   - The sink is optional: the default is silent, so the library never writes
//     to the console on its own.
//
// Concurrency:
//   - The active sink is held in an atomic pointer; SetDiagnostics may be called
//     from any goroutine.

package matrix

import "sync/atomic"

// Diagnostics receives precondition-failure messages with structured key/value
// attributes. Both *slog.Logger and internal/logger.Logger satisfy it.
type Diagnostics interface {
	Warn(msg string, args ...any)
}

// Diagnostic messages (stable wording; tests and log pipelines grep for these).
const (
	msgShapeMismatch  = "mismatch shape of given matrix"
	msgProductDims    = "mismatch dimensions of given matrix"
	msgNotSquare      = "given matrix is not squared"
	msgNotSymmetric   = "given matrix is not symmetric"
	msgIndexRange     = "index out of range"
	msgInvalidShape   = "dimensions must be positive"
	msgAllocation     = "allocation error"
	msgNilMatrix      = "nil matrix"
	msgInvalidParam   = "invalid parameter"
	msgJoinSize       = "Invalid size"
	msgBackendFailure = "backend reported failure"
)

// sink boxes the interface so it can live in an atomic.Pointer.
type sink struct{ d Diagnostics }

var activeSink atomic.Pointer[sink]

// SetDiagnostics installs d as the package-wide diagnostics sink and returns the
// previous one (nil when none was set). Passing nil silences diagnostics.
func SetDiagnostics(d Diagnostics) Diagnostics {
	var next *sink
	if d != nil {
		next = &sink{d: d}
	}
	prev := activeSink.Swap(next)
	if prev == nil {
		return nil
	}

	return prev.d
}

// report emits msg through the override when present, else through the
// package-wide sink. A nil sink drops the message.
func report(override Diagnostics, msg string, args ...any) {
	if override != nil {
		override.Warn(msg, args...)
		return
	}
	if s := activeSink.Load(); s != nil {
		s.d.Warn(msg, args...)
	}
}
