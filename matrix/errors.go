// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// or terminates the process on a user-triggered condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Operations wrap sentinels as "<Op>: <sentinel>" via matrixErrorf; callers match
// with errors.Is.
//
// VALIDATION ORDER (documented, enforced in tests):
// nil -> shape/index -> square -> symmetry -> backend status.

var (
	// ErrInvalidShape is returned when a requested dimension is not positive.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates operands disagree on a required dimension
	// (Add/Hadamard shapes, join row/column counts).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNotSymmetric signals that a matrix is not exactly equal to its transpose.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrIndexOutOfRange indicates a row, column or vector index outside valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrAllocationFailure is returned when the requested buffer cannot be
	// addressed (rows*cols overflows int). Callers may treat it as fatal.
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrBackendFailure wraps a non-zero status code reported by the
	// linear-algebra backend. The *backend.StatusError is reachable via errors.As.
	ErrBackendFailure = errors.New("matrix: backend failure")

	// ErrNilMatrix indicates that a nil *Dense or *Vector was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidParameter indicates a scalar argument outside its domain
	// (negative or non-finite Poisson lambda, Clip bounds with lo > hi).
	ErrInvalidParameter = errors.New("matrix: invalid parameter")
)
