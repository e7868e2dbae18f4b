// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxVecAt  = "Vector.At"
	ctxVecSet = "Vector.Set"
)

// NewRawVector allocates a vector of length n with unspecified contents.
// Returns ErrInvalidShape when n <= 0 and ErrAllocationFailure when n is not
// addressable.
func NewRawVector(n int) (*Vector, error) {
	if _, err := checkedSize(1, n); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxNewRV, n, err)
	}

	return &Vector{n: n, data: make([]float64, n)}, nil
}

// NewZerosVector returns a zero vector of length n.
func NewZerosVector(n int) (*Vector, error) {
	v, err := NewRawVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = 0
	}

	return v, nil
}

// NewOnesVector returns a vector of length n filled with 1.
func NewOnesVector(n int) (*Vector, error) { return NewFullVector(n, 1) }

// NewFullVector returns a vector of length n filled with val.
func NewFullVector(n int, val float64) (*Vector, error) {
	v, err := NewRawVector(n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = val
	}

	return v, nil
}

// NewVectorFrom copies values into a new vector. An empty slice is ErrInvalidShape.
func NewVectorFrom(values []float64) (*Vector, error) {
	v, err := NewRawVector(len(values))
	if err != nil {
		return nil, err
	}
	copy(v.data, values)

	return v, nil
}

// Len returns the vector length.
func (v *Vector) Len() int { return v.n }

// At returns element i or ErrIndexOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		report(nil, msgIndexRange, "op", ctxVecAt, "index", i, "len", v.n)
		return 0, fmt.Errorf("%s(%d): %w", ctxVecAt, i, ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrIndexOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.n {
		report(nil, msgIndexRange, "op", ctxVecSet, "index", i, "len", v.n)
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, ErrIndexOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Data returns a copy of the elements.
func (v *Vector) Data() []float64 {
	out := make([]float64, v.n)
	copy(out, v.data)

	return out
}

// RawData exposes the backing slice; writes mutate the vector.
func (v *Vector) RawData() []float64 { return v.data }

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	cp := make([]float64, v.n)
	copy(cp, v.data)

	return &Vector{n: v.n, data: cp}
}

// Sum returns the sum of all elements in index order.
func (v *Vector) Sum() float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}

	return s
}

// String renders the vector as a single bracketed row.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		b.WriteString(fmt.Sprintf("%g", x))
		if i+1 < v.n {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtRowClose)

	return b.String()
}
