// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/numla/backend"

const (
	opNormL1        = "NormL1"
	opNormL2        = "NormL2"
	opNormInf       = "NormInf"
	opNormFrobenius = "NormFrobenius"
	opNormMax       = "NormMax"
)

const routineLange = "dlange"

// NormL1 returns the induced 1-norm: the largest column sum of |a(i,j)|.
func NormL1(a *Dense, opts ...Option) (float64, error) {
	return lange(gatherOptions(opts...), opNormL1, backend.NormOne, a)
}

// NormInf returns the induced ∞-norm: the largest row sum of |a(i,j)|.
func NormInf(a *Dense, opts ...Option) (float64, error) {
	return lange(gatherOptions(opts...), opNormInf, backend.NormInf, a)
}

// NormFrobenius returns sqrt(Σ a(i,j)²).
func NormFrobenius(a *Dense, opts ...Option) (float64, error) {
	return lange(gatherOptions(opts...), opNormFrobenius, backend.NormFrobenius, a)
}

// NormMax returns max |a(i,j)|. It is not a consistent matrix norm.
func NormMax(a *Dense, opts ...Option) (float64, error) {
	return lange(gatherOptions(opts...), opNormMax, backend.NormMax, a)
}

// NormL2 returns the spectral norm, the largest singular value of a.
// It is computed by Dgesvd without singular vectors, not by Dlange.
// Errors: ErrNilMatrix, ErrBackendFailure.
func NormL2(a *Dense, opts ...Option) (float64, error) {
	s, err := singularValues(gatherOptions(opts...), opNormL2, a)
	if err != nil {
		return 0, err
	}

	return s.data[0], nil
}

// lange reads a in place; Dlange never writes its matrix argument.
func lange(o Options, op string, norm backend.Norm, a *Dense) (float64, error) {
	if err := validateNotNil(o.diag, op, a); err != nil {
		return 0, matrixErrorf(op, err)
	}
	v, info := o.kernel.Dlange(backend.RowMajor, norm, a.r, a.c, a.data, a.c)
	if info != 0 {
		return 0, backendFailure(o, op, routineLange, info)
	}

	return v, nil
}
