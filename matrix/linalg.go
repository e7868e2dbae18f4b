// SPDX-License-Identifier: MIT
// Package matrix - backend delegation adapter.
//
// Purpose:
//   - Marshal Dense values into the backend.Kernel calling convention
//     (layout flag, dimensions, leading dimensions, pivot buffers) and map
//     kernel status codes back into ErrBackendFailure.
//   - Keep every delegated call non-destructive for the caller: destructive
//     kernels always run on a private Clone.
//
// Contract with the kernel:
//   - Layout is always backend.RowMajor and the leading dimension of an r×c
//     operand is c.
//   - Pivot buffers are allocated inside the call, sized to the operand's
//     column count, and never escape it.
//   - Status 0 is success; anything else is authoritative failure. No fallback
//     or retry is attempted.
//
// Errors:
//   - Backend failures are wrapped as "<Op>: matrix: backend failure: <status>",
//     so both errors.Is(err, ErrBackendFailure) and errors.As(err, **backend.StatusError)
//     hold.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numla/backend"
)

const (
	opMultiplyDense = "MultiplyDense"
	opInvert        = "Invert"
	opRowEchelon    = "RowEchelon"
	opCholesky      = "Cholesky"
	opArgMax        = "ArgMax"
	opArgMin        = "ArgMin"
	opDeterminant   = "Determinant"
)

// Kernel routine names used in status errors.
const (
	routineGemm  = "dgemm"
	routineGetrf = "dgetrf"
	routineGetri = "dgetri"
	routinePotrf = "dpotrf"
	routineIamax = "idamax"
	routineIamin = "idamin"
)

// backendFailure reports and wraps a non-zero kernel status.
func backendFailure(o Options, op, routine string, info int) error {
	statusErr := backend.Check(routine, info)
	report(o.diag, msgBackendFailure, "op", op, "kernel", o.kernel.Name(), "routine", routine, "info", info)

	return fmt.Errorf("%s: %w: %w", op, ErrBackendFailure, statusErr)
}

// MultiplyDense computes the matrix product C = A × B through the kernel's Dgemm.
// MAIN DESCRIPTION:
//   - Allocates C (a.Rows() × b.Cols()) and calls
//     Dgemm(RowMajor, NoTrans, NoTrans, m=a.Rows(), n=b.Cols(), k=a.Cols(),
//     1, A, lda=a.Cols(), B, ldb=b.Cols(), 0, C, ldc=b.Cols()).
//
// Behavior highlights:
//   - No shape precondition beyond nil checks: callers are responsible for
//     a.Cols() == b.Rows(). Operands the kernel cannot address (B too short
//     for k rows) are rejected by the kernel and surface as ErrBackendFailure.
//
// Errors:
//   - ErrNilMatrix, ErrBackendFailure.
//
// Complexity:
//   - Time O(m*n*k) in the kernel, Space O(m*n).
func MultiplyDense(a, b *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateNotNil(o.diag, opMultiplyDense, a); err != nil {
		return nil, matrixErrorf(opMultiplyDense, err)
	}
	if err := validateNotNil(o.diag, opMultiplyDense, b); err != nil {
		return nil, matrixErrorf(opMultiplyDense, err)
	}
	out, err := NewRaw(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMultiplyDense, err)
	}

	info := o.kernel.Dgemm(backend.RowMajor, backend.NoTrans, backend.NoTrans,
		a.r, b.c, a.c, 1, a.data, a.c, b.data, b.c, 0, out.data, b.c)
	if info != 0 {
		return nil, backendFailure(o, opMultiplyDense, routineGemm, info)
	}

	return out, nil
}

// Invert returns A⁻¹ computed by LU factorization followed by inversion from the factors.
// MAIN DESCRIPTION:
//   - Stage 1: ValidateSquare.
//   - Stage 2: private copy + pivot buffer of length Cols().
//   - Stage 3: Dgetrf; only on status 0, Dgetri.
//
// Behavior highlights:
//   - A singular input (exact zero pivot) is reported by Dgetrf with a positive
//     status and returned as ErrBackendFailure, never as a garbage matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrBackendFailure.
//
// Complexity:
//   - Time O(n³) in the kernel, Space O(n²).
func Invert(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateSquare(o.diag, opInvert, a); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	work := a.Clone()
	n := work.r
	ipiv := make([]int, work.c)

	if info := o.kernel.Dgetrf(backend.RowMajor, n, n, work.data, n, ipiv); info != 0 {
		return nil, backendFailure(o, opInvert, routineGetrf, info)
	}
	if info := o.kernel.Dgetri(backend.RowMajor, n, work.data, n, ipiv); info != 0 {
		return nil, backendFailure(o, opInvert, routineGetri, info)
	}

	return work, nil
}

// RowEchelon returns the packed LU factorization of a copy of a (any shape).
// The result is the raw Dgetrf artifact: U on and above the diagonal, the unit
// lower factor's multipliers below it, rows permuted by partial pivoting. It
// is not a reduced echelon form.
// Errors: ErrNilMatrix, ErrBackendFailure (including exactly singular inputs).
func RowEchelon(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateNotNil(o.diag, opRowEchelon, a); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	work := a.Clone()
	ipiv := make([]int, work.c)

	if info := o.kernel.Dgetrf(backend.RowMajor, work.r, work.c, work.data, work.c, ipiv); info != 0 {
		return nil, backendFailure(o, opRowEchelon, routineGetrf, info)
	}

	return work, nil
}

// Cholesky returns the lower-triangular L with L·Lᵀ = A.
// MAIN DESCRIPTION:
//   - Stage 1: ValidateSymmetric (nil → square → exact symmetry).
//   - Stage 2: Dpotrf(Lower) on a private copy.
//   - Stage 3: zero the strict upper triangle, which Dpotrf leaves untouched.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrNotSymmetric, ErrBackendFailure (not
//     positive definite).
//
// Complexity:
//   - Time O(n³/3) in the kernel, Space O(n²).
func Cholesky(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateSymmetric(o.diag, opCholesky, a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	work := a.Clone()
	n := work.r

	if info := o.kernel.Dpotrf(backend.RowMajor, backend.Lower, n, work.data, n); info != 0 {
		return nil, backendFailure(o, opCholesky, routinePotrf, info)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			work.data[i*n+j] = 0
		}
	}

	return work, nil
}

// ArgMax returns, per row, the 0-based column index of the largest |value|
// (first occurrence on ties), as reported by the kernel's Idamax.
// Errors: ErrNilMatrix, ErrBackendFailure.
func ArgMax(a *Dense, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	return rowExtremes(o, opArgMax, routineIamax, a, o.kernel.Idamax)
}

// ArgMin returns, per row, the 0-based column index of the smallest |value|
// (first occurrence on ties), as reported by the kernel's Idamin.
// Errors: ErrNilMatrix, ErrBackendFailure.
func ArgMin(a *Dense, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	return rowExtremes(o, opArgMin, routineIamin, a, o.kernel.Idamin)
}

// rowExtremes runs an index-of-extreme kernel over every row slice.
// Rows are passed as zero-copy subslices; the kernels only read them.
func rowExtremes(o Options, op, routine string, a *Dense, kernel func(n int, x []float64, incx int) int) (*Vector, error) {
	if err := validateNotNil(o.diag, op, a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	v, err := NewRawVector(a.r)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var i, idx int
	for i = 0; i < a.r; i++ {
		idx = kernel(a.c, a.data[i*a.c:(i+1)*a.c], 1)
		if idx < 0 || idx >= a.c {
			if idx >= 0 {
				idx = -idx - 1
			}
			return nil, backendFailure(o, op, routine, idx)
		}
		v.data[i] = float64(idx)
	}

	return v, nil
}

// Determinant returns det(A) from the LU factors of a private copy:
// the product of U's diagonal, negated once per row interchange.
// An exactly singular factorization (positive Dgetrf status) yields 0.
// Errors: ErrNilMatrix, ErrNotSquare, ErrBackendFailure (negative status).
func Determinant(a *Dense, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := validateSquare(o.diag, opDeterminant, a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	work := a.Clone()
	n := work.r
	ipiv := make([]int, work.c)

	info := o.kernel.Dgetrf(backend.RowMajor, n, n, work.data, n, ipiv)
	switch {
	case info < 0:
		return 0, backendFailure(o, opDeterminant, routineGetrf, info)
	case info > 0:
		return 0, nil
	}
	det := 1.0
	for i := 0; i < n; i++ {
		det *= work.data[i*n+i]
		if ipiv[i] != i {
			det = -det
		}
	}

	return det, nil
}
