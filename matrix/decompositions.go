// SPDX-License-Identifier: MIT
// Package matrix - factorizations returned as separate factors.
//
// Purpose:
//   - Expose the LU (with explicit permutation), singular value and eigen
//     decompositions, the Moore-Penrose pseudo-inverse and least-squares
//     solving on top of the backend.Kernel routines.
//   - Follow the same pipeline as linalg.go: validate → private copy →
//     kernel call → status check → unpack into fresh Dense/Vector values.
//
// Storage of results:
//   - Eigenvectors and singular vectors are stored as COLUMNS of the returned
//     matrices (U, the Vectors of an eigen result); VT holds Vᵀ, one right
//     singular vector per row.

package matrix

import (
	"math"

	"github.com/katalvlaran/numla/backend"
)

const (
	opLU             = "LU"
	opSVD            = "SVD"
	opSingularValues = "SingularValues"
	opEigen          = "Eigen"
	opEigenSym       = "EigenSym"
	opPseudoInverse  = "PseudoInverse"
	opLeastSquares   = "LeastSquares"
)

const (
	routineGesvd = "dgesvd"
	routineGeev  = "dgeev"
	routineSyev  = "dsyev"
	routineGels  = "dgels"
)

// machEps is the float64 unit roundoff used for the pseudo-inverse cutoff.
var machEps = math.Nextafter(1, 2) - 1

// LUFactors holds P·A = L·U for a square A.
// L is unit lower triangular, U upper triangular and P a permutation matrix.
type LUFactors struct {
	L, U, P *Dense
}

// SVDFactors holds A = U·diag(S)·VT.
// U is rows×rows, S has min(rows, cols) values in descending order and VT is cols×cols.
type SVDFactors struct {
	U  *Dense
	S  *Vector
	VT *Dense
}

// EigenFactors holds eigenvalues Real[k] + i·Imag[k] and the matching right
// eigenvectors as columns of Vectors. For a complex conjugate pair (k, k+1)
// column k holds the real part and column k+1 the imaginary part of the
// eigenvector for Real[k] + i·Imag[k].
type EigenFactors struct {
	Real    *Vector
	Imag    *Vector
	Vectors *Dense
}

// LU returns the factors of P·A = L·U.
// MAIN DESCRIPTION:
//   - Stage 1: ValidateSquare.
//   - Stage 2: Dgetrf on a private copy with a pivot buffer of length Cols().
//   - Stage 3: split the packed factor into L (unit diagonal) and U, and
//     replay the row interchanges to build P.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrBackendFailure (any non-zero status,
//     including an exactly singular U).
//
// Complexity:
//   - Time O(n³) in the kernel plus O(n²) unpacking, Space O(n²).
func LU(a *Dense, opts ...Option) (*LUFactors, error) {
	o := gatherOptions(opts...)
	if err := validateSquare(o.diag, opLU, a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	work := a.Clone()
	n := work.r
	ipiv := make([]int, work.c)

	if info := o.kernel.Dgetrf(backend.RowMajor, n, n, work.data, n, ipiv); info != 0 {
		return nil, backendFailure(o, opLU, routineGetrf, info)
	}

	l, err := NewZeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	u, err := NewZeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	p, err := NewZeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			l.data[i*n+j] = work.data[i*n+j]
		}
		l.data[i*n+i] = 1
		for j = i; j < n; j++ {
			u.data[i*n+j] = work.data[i*n+j]
		}
	}

	// Row i of P·A is row perm[i] of A.
	perm := make([]int, n)
	for i = range perm {
		perm[i] = i
	}
	for i = 0; i < n; i++ {
		perm[i], perm[ipiv[i]] = perm[ipiv[i]], perm[i]
	}
	for i = 0; i < n; i++ {
		p.data[i*n+perm[i]] = 1
	}

	return &LUFactors{L: l, U: u, P: p}, nil
}

// SVD returns the full singular value decomposition of a (any shape).
// The input is copied; Dgesvd runs with JobAll for both U and Vᵀ.
// Errors: ErrNilMatrix, ErrBackendFailure (no convergence or kernel rejection).
func SVD(a *Dense, opts ...Option) (*SVDFactors, error) {
	o := gatherOptions(opts...)
	return svd(o, opSVD, a)
}

func svd(o Options, op string, a *Dense) (*SVDFactors, error) {
	if err := validateNotNil(o.diag, op, a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	m, n := a.r, a.c
	work := a.Clone()
	s, err := NewRawVector(min(m, n))
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	u, err := NewRaw(m, m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	vt, err := NewRaw(n, n)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	info := o.kernel.Dgesvd(backend.RowMajor, backend.JobAll, backend.JobAll, m, n,
		work.data, n, s.data, u.data, m, vt.data, n)
	if info != 0 {
		return nil, backendFailure(o, op, routineGesvd, info)
	}

	return &SVDFactors{U: u, S: s, VT: vt}, nil
}

// SingularValues returns the min(rows, cols) singular values of a in
// descending order without forming U or Vᵀ.
// Errors: ErrNilMatrix, ErrBackendFailure.
func SingularValues(a *Dense, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	return singularValues(o, opSingularValues, a)
}

func singularValues(o Options, op string, a *Dense) (*Vector, error) {
	if err := validateNotNil(o.diag, op, a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	work := a.Clone()
	s, err := NewRawVector(min(a.r, a.c))
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	// ldu/ldvt stay 1: no vectors are referenced.
	info := o.kernel.Dgesvd(backend.RowMajor, backend.JobNone, backend.JobNone, a.r, a.c,
		work.data, a.c, s.data, nil, 1, nil, 1)
	if info != 0 {
		return nil, backendFailure(o, op, routineGesvd, info)
	}

	return s, nil
}

// Eigen returns the eigenvalues and right eigenvectors of a general square matrix.
// MAIN DESCRIPTION:
//   - Stage 1: ValidateSquare.
//   - Stage 2: Dgeev(JobNone, JobVectors) on a private copy.
//
// Behavior highlights:
//   - Eigenvalues are not sorted. Complex conjugate pairs are adjacent, the one
//     with positive imaginary part first.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrBackendFailure (QR iteration failed).
//
// Complexity:
//   - Time O(n³) in the kernel, Space O(n²).
func Eigen(a *Dense, opts ...Option) (*EigenFactors, error) {
	o := gatherOptions(opts...)
	if err := validateSquare(o.diag, opEigen, a); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	work := a.Clone()
	n := work.r
	wr, err := NewRawVector(n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	wi, err := NewRawVector(n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	vr, err := NewRaw(n, n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	info := o.kernel.Dgeev(backend.RowMajor, backend.JobNone, backend.JobVectors, n,
		work.data, n, wr.data, wi.data, nil, n, vr.data, n)
	if info != 0 {
		return nil, backendFailure(o, opEigen, routineGeev, info)
	}

	return &EigenFactors{Real: wr, Imag: wi, Vectors: vr}, nil
}

// EigenSym returns the eigenvalues (ascending) and orthonormal eigenvectors
// of a symmetric matrix. Imag is all zeros.
// The upper triangle is handed to Dsyev, after ValidateSymmetric has checked
// that both triangles agree exactly.
// Errors: ErrNilMatrix, ErrNotSquare, ErrNotSymmetric, ErrBackendFailure.
func EigenSym(a *Dense, opts ...Option) (*EigenFactors, error) {
	o := gatherOptions(opts...)
	if err := validateSymmetric(o.diag, opEigenSym, a); err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}
	work := a.Clone()
	n := work.r
	w, err := NewRawVector(n)
	if err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}
	wi, err := NewZerosVector(n)
	if err != nil {
		return nil, matrixErrorf(opEigenSym, err)
	}

	if info := o.kernel.Dsyev(backend.RowMajor, backend.JobVectors, backend.Upper, n, work.data, n, w.data); info != 0 {
		return nil, backendFailure(o, opEigenSym, routineSyev, info)
	}

	return &EigenFactors{Real: w, Imag: wi, Vectors: work}, nil
}

// PseudoInverse returns the Moore-Penrose pseudo-inverse A⁺ (cols×rows).
// MAIN DESCRIPTION:
//   - Stage 1: SVD of a private copy (errors carry the PseudoInverse tag).
//   - Stage 2: singular values at or below max(rows, cols)·ε·σ₀ are treated as
//     zero; the remaining k rows of Vᵀ are scaled by 1/σᵢ.
//   - Stage 3: A⁺ = (Σ⁺Vᵀ)ₖᵀ · (Uₖ)ᵀ through one transposed Dgemm.
//
// Errors:
//   - ErrNilMatrix, ErrBackendFailure.
//
// Complexity:
//   - Time O(m·n·min(m,n)) in the kernel, Space O(m² + n²).
func PseudoInverse(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	f, err := svd(o, opPseudoInverse, a)
	if err != nil {
		return nil, err
	}
	m, n := a.r, a.c
	out, err := NewZeros(n, m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	s := f.S.data
	cutoff := float64(max(m, n)) * machEps * s[0]
	rank := 0
	for rank < len(s) && s[rank] > cutoff {
		rank++
	}
	if rank == 0 {
		return out, nil
	}
	var i, j int
	for i = 0; i < rank; i++ {
		inv := 1 / s[i]
		for j = 0; j < n; j++ {
			f.VT.data[i*n+j] *= inv
		}
	}

	info := o.kernel.Dgemm(backend.RowMajor, backend.Trans, backend.Trans, n, m, rank,
		1, f.VT.data, n, f.U.data, m, 0, out.data, m)
	if info != 0 {
		return nil, backendFailure(o, opPseudoInverse, routineGemm, info)
	}

	return out, nil
}

// LeastSquares returns X (a.Cols()×b.Cols()) minimizing ‖A·X − B‖ when
// rows >= cols, or the minimum-norm solution of A·X = B when rows < cols.
// A must have full rank. Neither input is modified.
// Errors: ErrNilMatrix, ErrShapeMismatch (a.Rows() != b.Rows()),
// ErrBackendFailure (rank deficient A).
func LeastSquares(a, b *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := validateNotNil(o.diag, opLeastSquares, a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := validateNotNil(o.diag, opLeastSquares, b); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if a.r != b.r {
		report(o.diag, msgShapeMismatch, "op", opLeastSquares, "a_rows", a.r, "b_rows", b.r)
		return nil, matrixErrorf(opLeastSquares, ErrShapeMismatch)
	}
	m, n, nrhs := a.r, a.c, b.c
	work := a.Clone()
	// The right-hand side buffer is max(m, n) rows: X needs n rows on return.
	rhs, err := NewZeros(max(m, n), nrhs)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	copy(rhs.data, b.data)

	if info := o.kernel.Dgels(backend.RowMajor, backend.NoTrans, m, n, nrhs, work.data, n, rhs.data, nrhs); info != 0 {
		return nil, backendFailure(o, opLeastSquares, routineGels, info)
	}

	x, err := NewRaw(n, nrhs)
	if err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	copy(x.data, rhs.data[:n*nrhs])

	return x, nil
}
