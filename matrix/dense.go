// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - NewRaw: O(r*c) allocation; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"     // method tag used in error wrappers
	ctxSet   = "Set"    // method tag used in error wrappers
	ctxNewR  = "NewRaw" // ctor tag used in error wrappers
	ctxNewRV = "NewRawVector"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// maxElements bounds rows*cols so the product and the byte size stay addressable.
const maxElements = math.MaxInt / 8

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// checkedSize returns rows*cols or an error when the shape is invalid.
// MAIN DESCRIPTION:
//   - Shared shape gate for every allocating constructor.
//
// Implementation:
//   - Stage 1: reject non-positive dimensions (ErrInvalidShape).
//   - Stage 2: reject products that overflow the addressable range (ErrAllocationFailure).
//
// Complexity:
//   - Time O(1), Space O(1).
func checkedSize(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		report(nil, msgInvalidShape, "rows", rows, "cols", cols)
		return 0, ErrInvalidShape
	}
	if rows > maxElements/cols {
		report(nil, msgAllocation, "rows", rows, "cols", cols)
		return 0, ErrAllocationFailure
	}

	return rows * cols, nil
}

// NewRaw allocates an r×c matrix whose contents are unspecified.
// MAIN DESCRIPTION:
//   - The storage-model allocation primitive; all constructors build on it.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (ErrInvalidShape) and addressability
//     (ErrAllocationFailure).
//   - Stage 2: allocate the flat buffer.
//
// Behavior highlights:
//   - Callers must write every cell before reading it. The runtime happens to
//     zero the buffer, but this is not part of the contract; use NewZeros for
//     a guaranteed zero matrix.
//
// Errors:
//   - ErrInvalidShape, ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRaw(rows, cols int) (*Dense, error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewR, rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, n)}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// Unexported so the public surface never panics on bad coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from the flat buffer.
//
// Errors:
//   - ErrIndexOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		report(nil, msgIndexRange, "op", ctxAt, "row", row, "col", col, "rows", m.r, "cols", m.c)
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		report(nil, msgIndexRange, "op", ctxSet, "row", row, "col", col, "rows", m.r, "cols", m.c)
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RawData exposes the row-major backing slice (len == Rows()*Cols()).
// MAIN DESCRIPTION:
//   - Zero-copy access used to marshal a matrix into a backend call.
//
// Behavior highlights:
//   - The slice aliases the matrix buffer; writes through it mutate the matrix.
//     Use Clone first when the callee is destructive.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RawData() []float64 { return m.data }

// Clone returns a deep copy (new buffer, identical values, independent lifetime).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and bitwise-equal cells
// under float64 ==. Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values for diagnostics.
// Not for hot paths. Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
