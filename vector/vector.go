// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"
)

// Vector is an owned, fixed-length sequence of float32 values.
type Vector struct {
	values []float32
}

// New returns a zero vector of length n.
func New(n int) *Vector {
	return &Vector{values: make([]float32, n)}
}

// Of returns a vector holding a copy of values.
func Of(values ...float32) *Vector {
	return FromSlice(values, 0, len(values))
}

// FromSlice copies values[offset:offset+count] into a new vector.
func FromSlice(values []float32, offset, count int) *Vector {
	v := New(count)
	copy(v.values, values[offset:offset+count])

	return v
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector { return FromSlice(v.values, 0, len(v.values)) }

// Prefix returns a copy of the first count elements.
func (v *Vector) Prefix(count int) *Vector { return FromSlice(v.values, 0, count) }

// Range returns a copy of count elements starting at first.
func (v *Vector) Range(first, count int) *Vector { return FromSlice(v.values, first, count) }

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.values) }

// At returns element i.
func (v *Vector) At(i int) float32 { return v.values[i] }

// Set stores x at index i.
func (v *Vector) Set(i int, x float32) { v.values[i] = x }

// Values returns a copy of the elements.
func (v *Vector) Values() []float32 {
	out := make([]float32, len(v.values))
	copy(out, v.values)

	return out
}

// Get copies the first len(dst) elements into dst.
func (v *Vector) Get(dst []float32) {
	copy(dst, v.values[:len(dst)])
}

// GetRange copies v[first:first+count] into dst[offset:offset+count].
func (v *Vector) GetRange(first int, dst []float32, offset, count int) {
	copy(dst[offset:offset+count], v.values[first:first+count])
}

// SetFrom overwrites the first len(src) elements with src.
func (v *Vector) SetFrom(src []float32) {
	copy(v.values[:len(src)], src)
}

// SetRange overwrites v[first:first+count] with src[offset:offset+count].
func (v *Vector) SetRange(first int, src []float32, offset, count int) {
	copy(v.values[first:first+count], src[offset:offset+count])
}

// Equal reports element-wise equality (NaN is never equal).
func (v *Vector) Equal(o *Vector) bool {
	if len(v.values) != len(o.values) {
		return false
	}
	for i, x := range v.values {
		if x != o.values[i] {
			return false
		}
	}

	return true
}

// String renders the elements separated by single spaces.
func (v *Vector) String() string {
	var b strings.Builder
	for i, x := range v.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}

	return b.String()
}

// Copy copies all of to's length from from; from must be at least as long.
func Copy(from, to *Vector) {
	CopyRange(from, 0, to, 0, len(to.values))
}

// CopyRange copies count elements from from[firstFrom:] to to[firstTo:].
func CopyRange(from *Vector, firstFrom int, to *Vector, firstTo, count int) {
	copy(to.values[firstTo:firstTo+count], from.values[firstFrom:firstFrom+count])
}
