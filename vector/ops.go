// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Dot returns the sum of element-wise products of a and b.
func Dot(a, b *Vector) (float32, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("Dot: %w", ErrNilVector)
	}

	return DotSlice(a.values, b.values)
}

// DotSlice is Dot over raw slices.
func DotSlice(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: lengths %d and %d: %w", len(a), len(b), ErrSizeMismatch)
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Cross computes a×b into result and returns it. When result is nil a new
// length-3 vector is allocated. result may alias a or b.
func Cross(a, b, result *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Cross: %w", ErrNilVector)
	}
	if result == nil {
		result = New(3)
	}
	if err := CrossSlice(a.values, b.values, result.values); err != nil {
		return nil, err
	}

	return result, nil
}

// CrossSlice writes a×b into out; all three slices must have length 3.
func CrossSlice(a, b, out []float32) error {
	if len(a) != 3 || len(b) != 3 || len(out) != 3 {
		return fmt.Errorf("Cross: lengths %d, %d, %d: %w", len(a), len(b), len(out), ErrNotThreeDimensional)
	}
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	out[0], out[1], out[2] = x, y, z

	return nil
}

// Length returns the Euclidean norm of v.
func (v *Vector) Length() float32 { return LengthOf(v.values, 0, len(v.values)) }

// Normalize scales v in place to unit length. A zero vector becomes all NaN.
func (v *Vector) Normalize() { NormalizeRange(v.values, 0, len(v.values)) }

// Scale multiplies every element by k.
func (v *Vector) Scale(k float32) {
	for i := range v.values {
		v.values[i] *= k
	}
}

// LengthOf returns the Euclidean norm of values[first:first+count].
func LengthOf(values []float32, first, count int) float32 {
	return float32(math.Sqrt(float64(sumSquares(values[first : first+count]))))
}

// NormalizeRange scales values[first:first+count] by the reciprocal of its norm.
func NormalizeRange(values []float32, first, count int) {
	window := values[first : first+count]
	inv := 1 / float32(math.Sqrt(float64(sumSquares(window))))
	for i := range window {
		window[i] *= inv
	}
}

func sumSquares(values []float32) float32 {
	var sum float32
	for _, x := range values {
		sum += x * x
	}

	return sum
}
