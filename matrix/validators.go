// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/buffer checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Each validator describes what it assumes (e.g. no nil check).

package matrix

import "fmt"

// transformSize is the only shape the transform builders accept.
const transformSize = 4

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every operand is non-nil.
//
// Returns ErrNilMatrix on the first nil.
// Complexity: O(k).
func ValidateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures first.Cols == second.Rows and that result is
// first.Rows × second.Cols.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(first, second, result *Dense) error {
	if err := ValidateNotNil(first, second, result); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if first.c != second.r {
		return validatorErrorf("ValidateMulCompatible: inner", ErrDimensionMismatch)
	}
	if result.r != first.r || result.c != second.c {
		return validatorErrorf("ValidateMulCompatible: result", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTransposeShape ensures dst is src.Cols × src.Rows.
//
// Assumes src and dst are not nil.
func ValidateTransposeShape(src, dst *Dense) error {
	if src.r != dst.c || src.c != dst.r {
		return validatorErrorf("ValidateTransposeShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTransform ensures m is a 4×4 transform target.
//
// Errors: ErrUnsupported.
func ValidateTransform(m *Dense) error {
	if m.r != transformSize || m.c != transformSize {
		return validatorErrorf("ValidateTransform", ErrUnsupported)
	}

	return nil
}

// ValidateBufferLen ensures a buffer of length have can hold need values.
//
// Errors: ErrShortBuffer.
func ValidateBufferLen(have, need int) error {
	if have < need {
		return validatorErrorf(fmt.Sprintf("ValidateBufferLen(%d<%d)", have, need), ErrShortBuffer)
	}

	return nil
}
