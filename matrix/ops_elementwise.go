// SPDX-License-Identifier: MIT
// Package matrix provides shape-checked elementwise operations on Dense values:
// addition, subtraction, Hadamard product, minimum/maximum, scaling and
// clipping. All functions validate before allocating and return a fresh
// result; operands are never mutated.
//
// Notes:
//   - Multiply is the elementwise (Hadamard) product. The matrix product is
//     MultiplyDense, which delegates to the backend (linalg.go).
//   - No broadcasting: operands must have identical shapes.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opMinimum  = "Minimum"
	opMaximum  = "Maximum"
	opScale    = "Scale"
	opClip     = "Clip"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith computes out[k] = f(a[k], b[k]) over the flat buffers.
// MAIN DESCRIPTION:
//   - Shared kernel for every binary elementwise operation.
//
// Implementation:
//   - Stage 1: validateSameShape(a, b) (nil first, then shape).
//   - Stage 2: allocate the result with a's shape.
//   - Stage 3: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, wrapped with op.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func zipWith(op string, a, b *Dense, f func(x, y float64) float64) (*Dense, error) {
	if err := validateSameShape(nil, op, a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := NewRaw(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for k := range out.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// mapCells computes out[k] = f(m[k]) over the flat buffer.
func mapCells(op string, m *Dense, f func(x float64) float64) (*Dense, error) {
	if err := validateNotNil(nil, op, m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := NewRaw(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for k := range out.data {
		out.data[k] = f(m.data[k])
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	return zipWith(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	return zipWith(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	return zipWith(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Multiply is the element-wise product (alias of Hadamard), NOT a matrix
// product. Use MultiplyDense for C = A × B.
func Multiply(a, b *Dense) (*Dense, error) { return Hadamard(a, b) }

// Minimum returns the cell-wise minimum of a and b.
// A NaN in b is taken when a's cell is not smaller (a < b is false for NaN).
func Minimum(a, b *Dense) (*Dense, error) {
	return zipWith(opMinimum, a, b, func(x, y float64) float64 {
		if x < y {
			return x
		}
		return y
	})
}

// Maximum returns the cell-wise maximum of a and b.
func Maximum(a, b *Dense) (*Dense, error) {
	return zipWith(opMaximum, a, b, func(x, y float64) float64 {
		if x > y {
			return x
		}
		return y
	})
}

// Scale returns alpha*m.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	return mapCells(opScale, m, func(x float64) float64 { return alpha * x })
}

// Clip limits every cell to [lo, hi].
// Errors: ErrNilMatrix; ErrInvalidParameter when lo > hi or either bound is NaN.
func Clip(m *Dense, lo, hi float64) (*Dense, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		report(nil, msgInvalidParam, "op", opClip, "lo", lo, "hi", hi)
		return nil, matrixErrorf(opClip, ErrInvalidParameter)
	}

	return mapCells(opClip, m, func(x float64) float64 {
		switch {
		case x < lo:
			return lo
		case x > hi:
			return hi
		default:
			return x
		}
	})
}
