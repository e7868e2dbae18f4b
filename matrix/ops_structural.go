// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural operators: transpose, trace, cell access, row/column/diagonal
//     extraction, flattening and the four joins.
//   - Every extraction returns an independently owned copy, never a view.
//
// Addressing:
//   - All offsets use the row-major rule i*cols + j, including column and
//     diagonal extraction.
//
// Join placement (not symmetric aliases of each other):
//   - JoinLeft(a, b)  = [a | b]   a's columns occupy the low column offsets.
//   - JoinRight(a, b) = [b | a]   a is placed to the right of b.
//   - JoinAbove(a, b) = [b ; a]   b's rows occupy the low row offsets.
//   - JoinBelow(a, b) = [a ; b]   b is placed below a.

package matrix

const (
	opTranspose     = "Transpose"
	opTrace         = "Trace"
	opCellAt        = "CellAt"
	opRowVector     = "RowVector"
	opColVector     = "ColVector"
	opDiagVector    = "DiagonalVector"
	opFlatten       = "Flatten"
	opJoinLeft      = "JoinLeft"
	opJoinRight     = "JoinRight"
	opJoinAbove     = "JoinAbove"
	opJoinBelow     = "JoinBelow"
	opSwapDiagonals = "SwapDiagonals"
)

// Transpose returns a new cols×rows matrix with out[j,i] = m[i,j].
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(nil, opTranspose, m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewRaw(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func Trace(m *Dense) (float64, error) {
	if err := validateSquare(nil, opTrace, m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var tr float64
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// CellAt returns m[row, col]. Fails with ErrIndexOutOfRange when
// row >= Rows(), col >= Cols() or either index is negative.
func CellAt(m *Dense, row, col int) (float64, error) {
	if err := validateNotNil(nil, opCellAt, m); err != nil {
		return 0, matrixErrorf(opCellAt, err)
	}
	if err := validateIndex(nil, opCellAt, m, row, col); err != nil {
		return 0, matrixErrorf(opCellAt, err)
	}

	return m.data[row*m.c+col], nil
}

// RowVector copies row i into a new Vector of length Cols().
func RowVector(m *Dense, i int) (*Vector, error) {
	if err := validateNotNil(nil, opRowVector, m); err != nil {
		return nil, matrixErrorf(opRowVector, err)
	}
	if err := validateIndex(nil, opRowVector, m, i, 0); err != nil {
		return nil, matrixErrorf(opRowVector, err)
	}
	v, err := NewRawVector(m.c)
	if err != nil {
		return nil, matrixErrorf(opRowVector, err)
	}
	copy(v.data, m.data[i*m.c:(i+1)*m.c])

	return v, nil
}

// ColVector copies column j into a new Vector of length Rows().
func ColVector(m *Dense, j int) (*Vector, error) {
	if err := validateNotNil(nil, opColVector, m); err != nil {
		return nil, matrixErrorf(opColVector, err)
	}
	if err := validateIndex(nil, opColVector, m, 0, j); err != nil {
		return nil, matrixErrorf(opColVector, err)
	}
	v, err := NewRawVector(m.r)
	if err != nil {
		return nil, matrixErrorf(opColVector, err)
	}
	for i := 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+j]
	}

	return v, nil
}

// DiagonalVector copies the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNotSquare.
func DiagonalVector(m *Dense) (*Vector, error) {
	if err := validateSquare(nil, opDiagVector, m); err != nil {
		return nil, matrixErrorf(opDiagVector, err)
	}
	v, err := NewRawVector(m.r)
	if err != nil {
		return nil, matrixErrorf(opDiagVector, err)
	}
	for i := 0; i < m.r; i++ {
		v.data[i] = m.data[i*m.c+i]
	}

	return v, nil
}

// Flatten copies all cells into a Vector of length Rows()*Cols() in row-major order.
func Flatten(m *Dense) (*Vector, error) {
	if err := validateNotNil(nil, opFlatten, m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	v, err := NewRawVector(len(m.data))
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	copy(v.data, m.data)

	return v, nil
}

// JoinLeft returns [a | b]: a's columns followed by b's. Rows must agree.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func JoinLeft(a, b *Dense) (*Dense, error) { return joinCols(opJoinLeft, a, b, a, b) }

// JoinRight returns [b | a]: a is attached on the right of b. Rows must agree.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func JoinRight(a, b *Dense) (*Dense, error) { return joinCols(opJoinRight, a, b, b, a) }

// JoinAbove returns [b ; a]: b's rows first, then a's. Cols must agree.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func JoinAbove(a, b *Dense) (*Dense, error) { return joinRows(opJoinAbove, a, b, b, a) }

// JoinBelow returns [a ; b]: a's rows first, then b's. Cols must agree.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func JoinBelow(a, b *Dense) (*Dense, error) { return joinRows(opJoinBelow, a, b, a, b) }

// joinCols validates a.r == b.r, then writes left's columns before right's.
// Complexity: O(r*(c1+c2)).
func joinCols(op string, a, b, left, right *Dense) (*Dense, error) {
	if a == nil || b == nil {
		report(nil, msgNilMatrix, "op", op)
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	if a.r != b.r {
		report(nil, msgJoinSize, "op", op, "a_rows", a.r, "b_rows", b.r)
		return nil, matrixErrorf(op, ErrShapeMismatch)
	}
	cols := left.c + right.c
	out, err := NewRaw(a.r, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var i, base int
	for i = 0; i < a.r; i++ {
		base = i * cols
		copy(out.data[base:base+left.c], left.data[i*left.c:(i+1)*left.c])
		copy(out.data[base+left.c:base+cols], right.data[i*right.c:(i+1)*right.c])
	}

	return out, nil
}

// joinRows validates a.c == b.c, then stacks top's rows above bottom's.
// Complexity: O((r1+r2)*c).
func joinRows(op string, a, b, top, bottom *Dense) (*Dense, error) {
	if a == nil || b == nil {
		report(nil, msgNilMatrix, "op", op)
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	if a.c != b.c {
		report(nil, msgJoinSize, "op", op, "a_cols", a.c, "b_cols", b.c)
		return nil, matrixErrorf(op, ErrShapeMismatch)
	}
	out, err := NewRaw(top.r+bottom.r, a.c)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	copy(out.data[:len(top.data)], top.data)
	copy(out.data[len(top.data):], bottom.data)

	return out, nil
}

// SwapDiagonals returns a copy of a square matrix in which, for every row i,
// the main-diagonal cell (i, i) and the anti-diagonal cell (i, n-1-i) are
// exchanged. The centre cell of an odd-sized matrix is unchanged.
// Errors: ErrNilMatrix, ErrNotSquare.
func SwapDiagonals(m *Dense) (*Dense, error) {
	if err := validateSquare(nil, opSwapDiagonals, m); err != nil {
		return nil, matrixErrorf(opSwapDiagonals, err)
	}
	out := m.Clone()
	n := m.r
	var i, d, a int
	for i = 0; i < n; i++ {
		d = i*n + i
		a = i*n + (n - 1 - i)
		out.data[d], out.data[a] = out.data[a], out.data[d]
	}

	return out, nil
}
