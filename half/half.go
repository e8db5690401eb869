// SPDX-License-Identifier: MIT

package half

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Value is the raw binary16 bit pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
type Value uint16

// Format geometry.
const (
	Bytes       = 2   // encoded size in bytes
	Size        = 16  // encoded size in bits
	MaxExponent = 15  // largest unbiased exponent of a finite value
	MinExponent = -14 // smallest unbiased exponent of a normal value
)

// Well-known bit patterns.
const (
	NaN              Value = 0x7FFF // 0_11111_1111111111
	PositiveInfinity Value = 0x7C00 // 0_11111_0000000000
	NegativeInfinity Value = 0xFC00 // 1_11111_0000000000
	Zero             Value = 0x0000
	NegativeZero     Value = 0x8000
	One              Value = 0x3C00 // 0_01111_0000000000
	MaxValue         Value = 0x7BFF // 65504
	MinValue         Value = 0x0001 // 2^-24, smallest subnormal
	MinNormal        Value = 0x0400 // 2^-14
)

const (
	signMask        Value = 0x8000
	exponentMask    Value = 0x7C00
	significandMask Value = 0x03FF

	bias            = 15
	significandBits = 10
	leadingBit      = 1 << significandBits

	f32ExponentBias  = 127
	f32ExponentShift = 23
	f32ExponentMask  = 0xFF
)

// FromFloat32 encodes f.
//
// The significand is truncated (no rounding); exponents above MaxExponent clamp
// to a signed infinity and exponents below MinExponent flush to a signed zero.
func FromFloat32(f float32) Value {
	var sign Value
	if math.Signbit(float64(f)) {
		sign = signMask
	}
	if f != f {
		return sign | NaN
	}

	exp := exponentOf(f)
	switch {
	case exp > MaxExponent:
		return sign | PositiveInfinity
	case exp < MinExponent:
		return sign
	}

	exponentBits := Value(exp+bias) << significandBits
	// |f|·2^(10-exp) lies in [1024, 2048); the conversion truncates and the mask drops the leading bit.
	significand := Value(int32(math.Ldexp(math.Abs(float64(f)), significandBits-exp))) & significandMask

	return sign | exponentBits | significand
}

// FromFloat64 narrows f to float32 and encodes it.
func FromFloat64(f float64) Value { return FromFloat32(float32(f)) }

// FromFloat encodes any float type through float32.
func FromFloat[T constraints.Float](v T) Value { return FromFloat32(float32(v)) }

// FromInt encodes any integer type through float32.
func FromInt[T constraints.Integer](v T) Value { return FromFloat32(float32(v)) }

// exponentOf returns the unbiased binary exponent of f, as stored in its float32
// exponent field: -127 for zeros and subnormals, 128 for infinities and NaN.
func exponentOf(f float32) int {
	return int((math.Float32bits(f)>>f32ExponentShift)&f32ExponentMask) - f32ExponentBias
}

// Float32 decodes h.
func (h Value) Float32() float32 {
	exp := int((h&exponentMask)>>significandBits) - bias
	significand := int(h & significandMask)

	var f float64
	switch exp {
	case MaxExponent + 1:
		if significand == 0 {
			f = math.Inf(1)
		} else {
			f = math.NaN() // payload is not decoded
		}
	case MinExponent - 1:
		// zero or subnormal: no implicit bit, fixed scale 2^-24
		f = math.Ldexp(float64(significand), MinExponent-significandBits)
	default:
		f = math.Ldexp(float64(significand|leadingBit), exp-significandBits)
	}
	if h&signMask != 0 {
		f = math.Copysign(f, -1)
	}

	return float32(f)
}

// Float64 decodes h.
func (h Value) Float64() float64 { return float64(h.Float32()) }

// Int decodes h and truncates toward zero. NaN yields 0 and infinities saturate.
func (h Value) Int() int32 {
	f := h.Float32()
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}

	return int32(f)
}

// Int64 is Int widened to 64 bits.
func (h Value) Int64() int64 { return int64(h.Int()) }

// Bits returns the raw pattern.
func (h Value) Bits() uint16 { return uint16(h) }

// IsNaN reports whether h is a NaN pattern.
func (h Value) IsNaN() bool {
	return h&exponentMask == exponentMask && h&significandMask != 0
}

// IsInf reports whether h is an infinity, according to sign (as math.IsInf).
func (h Value) IsInf(sign int) bool {
	if h&^signMask != PositiveInfinity {
		return false
	}
	neg := h&signMask != 0

	return sign == 0 || (sign > 0 && !neg) || (sign < 0 && neg)
}

// IsSubnormal reports whether h has a zero exponent field and a nonzero significand.
func (h Value) IsSubnormal() bool {
	return h&exponentMask == 0 && h&significandMask != 0
}

// Signbit reports whether the sign bit is set.
func (h Value) Signbit() bool { return h&signMask != 0 }

// String renders the decoded float32 value.
func (h Value) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}
