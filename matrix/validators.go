// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Predicates (SameShape, IsSquare, ...) answer with a bool and report a
//     diagnostic when the answer is false.
//   - Validators (ValidateX) return plain sentinel errors so call sites can wrap
//     them uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure apart from the diagnostic, deterministic and allocate
//     nothing (IsSymmetric compares in place instead of building a transpose).
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Square → Symmetric.

package matrix

import "math"

// SameShape reports whether a and b have identical rows and cols.
// Complexity: O(1).
func SameShape(a, b *Dense) bool { return sameShape(nil, "SameShape", a, b) }

// CompatibleForProduct reports whether a.Rows() == b.Cols().
// Note the rows-against-cols comparison; it is not cols(a) == rows(b), and
// MultiplyDense does not consult it.
// Complexity: O(1).
func CompatibleForProduct(a, b *Dense) bool {
	if a == nil || b == nil {
		report(nil, msgNilMatrix, "op", "CompatibleForProduct")
		return false
	}
	if a.r != b.c {
		report(nil, msgProductDims, "op", "CompatibleForProduct", "a_rows", a.r, "b_cols", b.c)
		return false
	}

	return true
}

// IsSquare reports whether m.Rows() == m.Cols().
// Complexity: O(1).
func IsSquare(m *Dense) bool { return isSquare(nil, "IsSquare", m) }

// IsSymmetric reports whether m is square and exactly equal to its transpose.
// No tolerance is applied: a single differing bit makes the answer false, and
// a NaN anywhere (diagonal included) never equals itself.
// A non-square input reports the square diagnostic and returns false.
// Complexity: O(n²) over the upper triangle.
func IsSymmetric(m *Dense) bool {
	if !isSquare(nil, "IsSymmetric", m) {
		return false
	}
	if !symmetricCells(m) {
		report(nil, msgNotSymmetric, "op", "IsSymmetric", "n", m.r)
		return false
	}

	return true
}

// IsNearZero reports whether |x| < DefaultEpsilon.
func IsNearZero(x float64) bool { return math.Abs(x) < DefaultEpsilon }

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error { return validateNotNil(nil, "ValidateNotNil", m) }

// ValidateSameShape returns ErrNilMatrix or ErrShapeMismatch.
func ValidateSameShape(a, b *Dense) error {
	return validateSameShape(nil, "ValidateSameShape", a, b)
}

// ValidateSquare returns ErrNilMatrix or ErrNotSquare.
func ValidateSquare(m *Dense) error { return validateSquare(nil, "ValidateSquare", m) }

// ValidateSymmetric returns ErrNilMatrix, ErrNotSquare or ErrNotSymmetric, in that order.
func ValidateSymmetric(m *Dense) error { return validateSymmetric(nil, "ValidateSymmetric", m) }

// ValidateIndex returns ErrNilMatrix or ErrIndexOutOfRange for (row, col).
func ValidateIndex(m *Dense, row, col int) error {
	if err := validateNotNil(nil, "ValidateIndex", m); err != nil {
		return err
	}

	return validateIndex(nil, "ValidateIndex", m, row, col)
}

// ---------- internal forms (diagnostics override + op tag) ----------

func validateNotNil(d Diagnostics, op string, m *Dense) error {
	if m == nil {
		report(d, msgNilMatrix, "op", op)
		return ErrNilMatrix
	}

	return nil
}

func sameShape(d Diagnostics, op string, a, b *Dense) bool {
	if a == nil || b == nil {
		report(d, msgNilMatrix, "op", op)
		return false
	}
	if a.r != b.r || a.c != b.c {
		report(d, msgShapeMismatch, "op", op, "a_rows", a.r, "a_cols", a.c, "b_rows", b.r, "b_cols", b.c)
		return false
	}

	return true
}

func validateSameShape(d Diagnostics, op string, a, b *Dense) error {
	if a == nil || b == nil {
		report(d, msgNilMatrix, "op", op)
		return ErrNilMatrix
	}
	if !sameShape(d, op, a, b) {
		return ErrShapeMismatch
	}

	return nil
}

func isSquare(d Diagnostics, op string, m *Dense) bool {
	if m == nil {
		report(d, msgNilMatrix, "op", op)
		return false
	}
	if m.r != m.c {
		report(d, msgNotSquare, "op", op, "rows", m.r, "cols", m.c)
		return false
	}

	return true
}

func validateSquare(d Diagnostics, op string, m *Dense) error {
	if err := validateNotNil(d, op, m); err != nil {
		return err
	}
	if !isSquare(d, op, m) {
		return ErrNotSquare
	}

	return nil
}

func validateSymmetric(d Diagnostics, op string, m *Dense) error {
	if err := validateSquare(d, op, m); err != nil {
		return err
	}
	if !symmetricCells(m) {
		report(d, msgNotSymmetric, "op", op, "n", m.r)
		return ErrNotSymmetric
	}

	return nil
}

// symmetricCells compares A[i,j] with A[j,i] for i<=j using exact equality.
// The diagonal is compared with itself so NaN cells fail as they would against
// the transpose. Assumes m is square. Deterministic i→j scan with early exit.
func symmetricCells(m *Dense) bool {
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// validateIndex checks 0 ≤ row < m.r and 0 ≤ col < m.c.
func validateIndex(d Diagnostics, op string, m *Dense, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		report(d, msgIndexRange, "op", op, "row", row, "col", col, "rows", m.r, "cols", m.c)
		return ErrIndexOutOfRange
	}

	return nil
}
