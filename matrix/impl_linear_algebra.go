// SPDX-License-Identifier: MIT
// Package matrix provides the canonical algebra kernels on *Dense:
// element-wise addition, matrix and matrix×vector products, transpose,
// copies and buffer swaps. All functions perform strict fail-fast
// validation and return wrapped sentinels on shape mismatches.
//
// Purpose:
//   - Destination-passing kernels (caller supplies result) so hot transform
//     loops can run without allocation.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf.
//   - Aliasing between result and an operand is allowed everywhere; kernels
//     that cannot compute in place go through the destination's result scratch.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glkit/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opMultiply  = "Multiply"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opCopy      = "Copy"
	opSubCopy   = "SubCopy"
	opSwap      = "Swap"
	opAllClose  = "AllClose"
	opTransform = "Transform"
)

// mulVecStack is the column count served from a stack buffer in MulVec.
const mulVecStack = 4

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add stores first + second into result. All three must share a shape;
// result may alias either operand.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Add(first, second, result *Dense) error {
	if err := ValidateNotNil(first, second, result); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(first, second); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(first, result); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for i := range result.data {
		result.data[i] = first.data[i] + second.data[i]
	}

	return nil
}

// Multiply stores first × second into result.
// Implementation:
//   - Stage 1: validate first.Cols == second.Rows and result is first.Rows × second.Cols.
//   - Stage 2: pick the destination; when result aliases an operand, compute
//     into result's scratch and swap buffers afterwards.
//   - Stage 3: i→j→k triple loop with a float32 accumulator.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c*k), Space O(1) after the first aliased call.
func Multiply(first, second, result *Dense) error {
	if err := ValidateMulCompatible(first, second, result); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	dst := result
	if result == first || result == second {
		dst = result.resultScratch()
	}
	multiplyInto(first, second, dst)
	if dst != result {
		result.adoptFrom(dst)
	}

	return nil
}

// multiplyInto is the unchecked product kernel; dst must not alias a or b.
func multiplyInto(a, b, dst *Dense) {
	var i, j, k, baseA int
	var sum float32
	for i = 0; i < a.r; i++ {
		baseA = i * a.c
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[baseA+k] * b.data[k*b.c+j]
			}
			dst.data[i*dst.c+j] = sum
		}
	}
}

// MulVec computes m × v (v as a column vector) into result and returns it.
// When result is nil a vector of length Rows() is allocated. v may be longer
// than Cols() (trailing elements are ignored); result may alias v.
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector.
//   - ErrDimensionMismatch when v is shorter than Cols() or result shorter than Rows().
//
// Complexity:
//   - Time O(r*c), Space O(c) (stack for c ≤ 4).
func MulVec(m *Dense, v, result *vector.Vector) (*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if v == nil {
		return nil, matrixErrorf(opMulVec, vector.ErrNilVector)
	}
	if v.Len() < m.c {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("vector length %d < %d columns: %w", v.Len(), m.c, ErrDimensionMismatch))
	}
	if result == nil {
		result = vector.New(m.r)
	}
	if result.Len() < m.r {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("result length %d < %d rows: %w", result.Len(), m.r, ErrDimensionMismatch))
	}

	var stack [mulVecStack]float32
	in := stack[:0]
	if m.c > mulVecStack {
		in = make([]float32, 0, m.c)
	}
	in = in[:m.c]
	v.Get(in)

	// in is a private copy of v, so result may alias it.
	var sum float32
	for i := 0; i < m.r; i++ {
		sum = 0
		base := i * m.c
		for j, x := range in {
			sum += m.data[base+j] * x
		}
		result.Set(i, sum)
	}

	return result, nil
}

// Transpose writes srcᵀ into dst, which must be src.Cols × src.Rows.
// dst may be src itself when src is square (in-place swap).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Transpose(src, dst *Dense) error {
	if err := ValidateNotNil(src, dst); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if err := ValidateTransposeShape(src, dst); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	if src == dst {
		transposeSquareInPlace(src)
		return nil
	}
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			dst.data[j*dst.c+i] = src.data[i*src.c+j]
		}
	}

	return nil
}

func transposeSquareInPlace(m *Dense) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			m.data[i*m.c+j], m.data[j*m.c+i] = m.data[j*m.c+i], m.data[i*m.c+j]
		}
	}
}

// Copy copies src into dst; shapes must match.
func Copy(src, dst *Dense) error {
	if err := ValidateNotNil(src, dst); err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err := ValidateSameShape(src, dst); err != nil {
		return matrixErrorf(opCopy, err)
	}
	copy(dst.data, src.data)

	return nil
}

// SubCopy copies the top-left dst.Rows × dst.Cols window of src into dst.
// dst must not be larger than src in either dimension.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func SubCopy(src, dst *Dense) error {
	if err := ValidateNotNil(src, dst); err != nil {
		return matrixErrorf(opSubCopy, err)
	}
	if dst.r > src.r || dst.c > src.c {
		return matrixErrorf(opSubCopy, fmt.Errorf("%dx%d into %dx%d: %w", src.r, src.c, dst.r, dst.c, ErrDimensionMismatch))
	}
	for i := 0; i < dst.r; i++ {
		copy(dst.data[i*dst.c:(i+1)*dst.c], src.data[i*src.c:i*src.c+dst.c])
	}

	return nil
}

// Swap exchanges the contents of a and b by swapping their backing buffers.
// Shapes must match. O(1).
func Swap(a, b *Dense) error {
	if err := ValidateNotNil(a, b); err != nil {
		return matrixErrorf(opSwap, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opSwap, err)
	}
	a.adoptFrom(b)

	return nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ tol for every element.
// NaN on either side is never close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Dense, tol float32) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i, x := range a.data {
		d := math.Abs(float64(x) - float64(b.data[i]))
		if !(d <= float64(tol)) {
			return false, nil
		}
	}

	return true, nil
}
