// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"strings"
)

// Auto selects the best kernel compiled into this build.
const Auto = "auto"

var defaultKernel = Gonum()

// Default returns the kernel used when callers do not choose one.
func Default() Kernel { return defaultKernel }

// Normalize lower-cases and validates a kernel name; "" means Auto.
func Normalize(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Auto, nil
	}
	switch n {
	case Auto, GonumName:
		return n, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected %s)", name, Available())
	}
}

// Lookup resolves a kernel by name (see Normalize).
func Lookup(name string) (Kernel, error) {
	n, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case GonumName:
		return Gonum(), nil
	default:
		return Default(), nil
	}
}

// Available returns a comma-separated list of accepted kernel names.
func Available() string {
	return strings.Join([]string{Auto, GonumName}, ",")
}
