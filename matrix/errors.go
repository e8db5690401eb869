// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with fmt.Errorf("ctx: %w", ErrX)
// at the detection site (matrixErrorf, denseErrorf, validatorErrorf); callers
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> square requirement -> dimension mismatch -> buffer length
// -> numeric failure (ErrSingular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set, row and column operations) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Multiply where first.Cols != second.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no usable pivot for a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrUnsupported marks a configuration the operation does not handle,
	// e.g. a transform builder invoked on a matrix that is not 4×4.
	ErrUnsupported = errors.New("matrix: unsupported dimensions")

	// ErrShortBuffer indicates that a bulk load/store buffer holds fewer than
	// Rows()*Cols() values.
	ErrShortBuffer = errors.New("matrix: buffer too short")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
