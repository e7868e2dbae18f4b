// SPDX-License-Identifier: MIT
// Package matrix - constructors.
//
// Purpose:
//   - Produce fresh, independently owned matrices in a named initial state.
//   - Keep every fill deterministic: fixed i→j order; random fills consume the
//     caller's source in that same order, so a seed fully determines the result.
//
// Complexity:
//   - Every constructor is O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Constructor tags for error wrapping.
const (
	opZeros    = "NewZeros"
	opOnes     = "NewOnes"
	opFull     = "NewFull"
	opIdentity = "NewIdentity"
	opDiagonal = "NewDiagonal"
	opUniform  = "NewUniform"
	opPoisson  = "NewPoisson"
	opGaussian = "NewGaussian"
	opCopy     = "Copy"
)

// fill allocates rows×cols and writes f(i,j) into every cell in row-major order.
func fill(op string, rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewRaw(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m, nil
}

// NewZeros returns a rows×cols matrix with every cell equal to 0.
func NewZeros(rows, cols int) (*Dense, error) {
	return fill(opZeros, rows, cols, func(_, _ int) float64 { return 0 })
}

// NewOnes returns a rows×cols matrix with every cell equal to 1.
func NewOnes(rows, cols int) (*Dense, error) {
	return fill(opOnes, rows, cols, func(_, _ int) float64 { return 1 })
}

// NewFull returns a rows×cols matrix with every cell equal to val.
func NewFull(rows, cols int, val float64) (*Dense, error) {
	return fill(opFull, rows, cols, func(_, _ int) float64 { return val })
}

// NewIdentity returns the rectangular identity: 1 where i==j, 0 elsewhere.
// Off-square shapes simply carry zeros past the shorter side.
// Complexity: O(r*c).
func NewIdentity(rows, cols int) (*Dense, error) {
	return fill(opIdentity, rows, cols, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})
}

// NewDiagonal promotes v to a square matrix of side v.Len() with cell(i,i)=v[i].
// MAIN DESCRIPTION:
//   - Writes the diagonal only.
//
// Behavior highlights:
//   - Off-diagonal cells are whatever NewRaw yields; the constructor does not
//     pre-zero them. Callers needing a clean diagonal matrix must rely on a
//     zero-initialized buffer (as Go allocation provides today) or zero first.
//
// Errors:
//   - ErrNilMatrix for a nil vector; allocation errors from NewRaw.
//
// Complexity:
//   - Time O(n) writes after O(n²) allocation.
func NewDiagonal(v *Vector) (*Dense, error) {
	if v == nil {
		report(nil, msgNilMatrix, "op", opDiagonal)
		return nil, matrixErrorf(opDiagonal, ErrNilMatrix)
	}
	n := v.n
	m, err := NewRaw(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = v.data[i]
	}

	return m, nil
}

// NewUniform draws every cell independently and uniformly from [-1, 1).
// A nil src uses the deterministic default stream.
func NewUniform(rows, cols int, src *rand.Rand) (*Dense, error) {
	r := sourceOrDefault(src)

	return fill(opUniform, rows, cols, func(_, _ int) float64 {
		return 2*r.Float64() - 1
	})
}

// NewGaussian draws every cell independently from the standard normal distribution.
// A nil src uses the deterministic default stream.
func NewGaussian(rows, cols int, src *rand.Rand) (*Dense, error) {
	r := sourceOrDefault(src)

	return fill(opGaussian, rows, cols, func(_, _ int) float64 {
		return r.NormFloat64()
	})
}

// MaxPoissonLambda is the largest mean NewPoisson accepts. Above it e^-lambda
// leaves the normal float64 range and the multiplicative scheme loses its
// stopping threshold (e^-746 is exactly 0).
const MaxPoissonLambda = 700.0

// NewPoisson fills every cell with an independent Poisson(lambda) sample.
// MAIN DESCRIPTION:
//   - Knuth's multiplicative scheme: multiply a running product by uniform
//     draws until it falls to e^-lambda or below, then emit (draws - 1).
//
// Errors:
//   - ErrInvalidParameter when lambda is NaN, negative or above MaxPoissonLambda.
//
// Complexity:
//   - Expected O(r*c*(lambda+1)) draws.
func NewPoisson(rows, cols int, lambda float64, src *rand.Rand) (*Dense, error) {
	if math.IsNaN(lambda) || lambda < 0 || lambda > MaxPoissonLambda {
		report(nil, msgInvalidParam, "op", opPoisson, "lambda", lambda)
		return nil, matrixErrorf(opPoisson, fmt.Errorf("lambda %v: %w", lambda, ErrInvalidParameter))
	}
	r := sourceOrDefault(src)
	limit := math.Exp(-lambda)

	return fill(opPoisson, rows, cols, func(_, _ int) float64 {
		return float64(knuthPoisson(r, limit))
	})
}

// knuthPoisson returns one sample given limit = e^-lambda.
func knuthPoisson(r *rand.Rand, limit float64) int {
	k := 0
	p := 1.0
	for {
		k++
		p *= r.Float64()
		if p <= limit {
			break
		}
	}

	return k - 1
}

// Copy returns a deep copy of m: new buffer, identical values, independent lifetime.
func Copy(m *Dense) (*Dense, error) {
	if err := validateNotNil(nil, opCopy, m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return m.Clone(), nil
}
