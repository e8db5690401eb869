// SPDX-License-Identifier: MIT

package fixed

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Value is a Q16.16 fixed-point number; the represented real value is int32(v) / 65536.
type Value int32

// Format geometry.
const (
	Bytes = 4  // encoded size in bytes
	Size  = 32 // encoded size in bits
	Shift = 16 // number of fractional bits
)

// Well-known values.
const (
	Zero     Value = 0
	One      Value = 1 << Shift
	Half     Value = 1 << (Shift - 1)
	MaxValue Value = math.MaxInt32 // largest representable value (≈ 32767.99998)
	MinValue Value = 1             // smallest positive value (1/65536)
)

// scale and invScale are exact powers of two used by the float conversions.
const (
	scale    = 1 << Shift
	invScale = 1.0 / scale
)

// FromBits reinterprets raw Q16.16 bits as a Value.
func FromBits(bits int32) Value { return Value(bits) }

// FromInt encodes an integer by shifting it left by 16 bits.
// The shift is evaluated in 64 bits and narrowed, so magnitudes above 2^15
// overflow silently (the low 32 bits are kept).
func FromInt[T constraints.Integer](v T) Value {
	return Value(int32(int64(v) << Shift))
}

// FromFloat encodes any float type; see FromFloat64.
func FromFloat[T constraints.Float](v T) Value {
	return FromFloat64(float64(v))
}

// FromFloat32 encodes a float32 by scaling with 2^16 and truncating toward zero.
func FromFloat32(f float32) Value {
	// float32 -> float64 is exact, and so is the power-of-two scaling below.
	return FromFloat64(float64(f))
}

// FromFloat64 encodes a float64 by scaling with 2^16 and truncating toward zero.
// NaN encodes to Zero; values outside the int32 range saturate to the int32 limits.
func FromFloat64(f float64) Value {
	scaled := math.Ldexp(f, Shift)
	switch {
	case math.IsNaN(scaled):
		return Zero
	case scaled >= math.MaxInt32:
		return Value(math.MaxInt32)
	case scaled <= math.MinInt32:
		return Value(math.MinInt32)
	}

	return Value(int32(scaled)) // Go conversion truncates toward zero
}

// Bits returns the raw Q16.16 representation.
func (v Value) Bits() int32 { return int32(v) }

// Int returns the integer part using an arithmetic shift (floor semantics).
func (v Value) Int() int32 { return int32(v) >> Shift }

// Int16 returns the integer part narrowed to 16 bits.
func (v Value) Int16() int16 { return int16(int32(v) >> Shift) }

// Int64 returns the integer part widened to 64 bits.
func (v Value) Int64() int64 { return int64(int32(v) >> Shift) }

// Float32 decodes v; the int32 -> float32 conversion may round, the scaling is exact.
func (v Value) Float32() float32 { return float32(int32(v)) * invScale }

// Float64 decodes v exactly.
func (v Value) Float64() float64 { return float64(int32(v)) * invScale }

// String renders the decoded float32 value.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
}
