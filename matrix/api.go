// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, allocating entry points over the destination-passing kernels
//     for callers that do not keep preallocated matrices around.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Results inherit the options of the first operand.
//   - Validation is performed in the kernels; facades only allocate and forward.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/glkit/vector"
)

const opTransformPoint = "TransformPoint"

// Product returns a new first × second.
// Complexity: O(r*c*k) time, one allocation.
func Product(first, second *Dense) (*Dense, error) {
	if err := ValidateNotNil(first, second); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	out := newDense(first.r, second.c, first.opts)
	if err := Multiply(first, second, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Transposed returns a new mᵀ.
func Transposed(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDense(m.c, m.r, m.opts)
	if err := Transpose(m, out); err != nil {
		return nil, err
	}

	return out, nil
}

// InverseOf returns a new m⁻¹; m is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
func InverseOf(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	out := newDense(m.r, m.c, m.opts)
	if err := Inverse(m, out); err != nil {
		return nil, err
	}

	return out, nil
}

// TransformPoint maps the 3D point p through the 4×4 m with w = 1 and returns
// the point after the perspective divide by the resulting w.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupported (m not 4×4), vector.ErrNilVector,
//     vector.ErrNotThreeDimensional.
func TransformPoint(m *Dense, p *vector.Vector) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTransformPoint, err)
	}
	if err := ValidateTransform(m); err != nil {
		return nil, matrixErrorf(opTransformPoint, err)
	}
	if p == nil {
		return nil, matrixErrorf(opTransformPoint, vector.ErrNilVector)
	}
	if p.Len() != 3 {
		return nil, matrixErrorf(opTransformPoint, fmt.Errorf("length %d: %w", p.Len(), vector.ErrNotThreeDimensional))
	}

	h, err := MulVec(m, vector.Of(p.At(0), p.At(1), p.At(2), 1), nil)
	if err != nil {
		return nil, matrixErrorf(opTransformPoint, err)
	}
	w := h.At(3)

	return vector.Of(h.At(0)/w, h.At(1)/w, h.At(2)/w), nil
}
