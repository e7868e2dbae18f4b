// SPDX-License-Identifier: MIT

// Package matrix is a dense, row-major float64 matrix and vector value layer.
//
// The package provides:
//
//   - Dense (r×c) and Vector (length n) values backed by one contiguous buffer,
//     cell (i, j) at offset i*cols + j.
//   - Constructors for named initial states: zeros, ones, full, identity,
//     diagonal, uniform, Gaussian and Poisson random fills from an explicit
//     *rand.Rand source.
//   - Elementwise operators (Add, Sub, Hadamard, Minimum, Maximum, Scale, Clip)
//     and structural ones (Transpose, Trace, row/column/diagonal extraction,
//     Flatten, the four Join directions, SwapDiagonals).
//   - Delegated linear algebra (MultiplyDense, Invert, RowEchelon, Cholesky,
//     ArgMax, ArgMin, Determinant) through a backend.Kernel that speaks the
//     BLAS/LAPACK calling convention.
//   - Factorizations returned as separate factors (LU with an explicit
//     permutation, SVD, Eigen, EigenSym), PseudoInverse, LeastSquares and the
//     Norm* family, on the same kernel.
//
// Every operation validates its preconditions in a fixed order (nil, shape,
// square, symmetry) and returns a fresh value; inputs are never mutated except
// through Dense.Set and Vector.Set. Failures are sentinel errors wrapped with
// the operation name, so callers match them with errors.Is:
//
//	inv, err := matrix.Invert(a)
//	if errors.Is(err, matrix.ErrBackendFailure) {
//		// singular or rejected by the kernel
//	}
//
// Failed preconditions are also reported to a Diagnostics sink (SetDiagnostics
// or WithDiagnostics). *slog.Logger satisfies Diagnostics directly.
//
// Values are not safe for concurrent mutation; concurrent reads are fine.
package matrix
