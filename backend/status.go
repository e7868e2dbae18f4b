// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
)

// StatusError records a non-zero status returned by a kernel routine.
type StatusError struct {
	Routine string // e.g. "dgetrf"
	Info    int    // LAPACKE info code (never 0)
}

// Error formats the routine and the meaning of its info code.
func (e *StatusError) Error() string {
	switch {
	case e.Info < 0:
		return fmt.Sprintf("backend: %s: argument %d had an illegal value", e.Routine, -e.Info)
	default:
		return fmt.Sprintf("backend: %s: numerical failure at index %d", e.Routine, e.Info)
	}
}

// IllegalArgument reports whether the kernel rejected its parameters.
func (e *StatusError) IllegalArgument() bool { return e.Info < 0 }

// Check converts a kernel status into an error: nil for 0, *StatusError otherwise.
func Check(routine string, info int) error {
	if info == 0 {
		return nil
	}

	return &StatusError{Routine: routine, Info: info}
}

// InfoOf extracts the info code from an error chain holding a *StatusError.
// It returns (0, false) when none is present.
func InfoOf(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Info, true
	}

	return 0, false
}
