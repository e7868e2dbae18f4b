// SPDX-License-Identifier: MIT

// Package matrix: value types of the storage model.
// This file intentionally contains ONLY the domain-facing types (Dense, Vector)
// and compile-time assertions. Errors, options and validators live in
// dedicated files (errors.go, options.go, validators.go).
package matrix

import "fmt"

// Dense is a concrete row-major matrix of float64 values.
//   - r, c hold dimensions (rows, cols), both > 0 for every public constructor.
//   - data is an exclusively owned flat buffer of length r*c (offset = i*c + j).
//
// The shape of a Dense never changes after construction; operations that
// change shape return a new Dense.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Vector is an owned linear buffer of float64 values.
// For addressing purposes it behaves like a 1×n row.
type Vector struct {
	n    int       // length ("cols")
	data []float64 // len == n
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense)(nil)
	_ fmt.Stringer = (*Vector)(nil)
)
