// SPDX-License-Identifier: MIT
// Package half_test contains unit tests for the binary16 codec.
package half_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/glkit/half"
	"github.com/stretchr/testify/require"
)

func negZero32() float32 { return float32(math.Copysign(0, -1)) }

func TestFromFloat32_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want half.Value
	}{
		{"+0", 0, half.Zero},
		{"-0", negZero32(), half.NegativeZero},
		{"+1", 1, half.One},
		{"-1", -1, 0xBC00},
		{"+2", 2, 0x4000},
		{"-2", -2, 0xC000},
		{"0.5", 0.5, 0x3800},
		{"1.5", 1.5, 0x3E00},
		{"max", 65504, half.MaxValue},
		{"min normal", float32(math.Ldexp(1, -14)), half.MinNormal},
		{"+Inf", float32(math.Inf(1)), half.PositiveInfinity},
		{"-Inf", float32(math.Inf(-1)), half.NegativeInfinity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, half.FromFloat32(tc.in))
		})
	}
}

func TestFromFloat32_ZeroSigns(t *testing.T) {
	require.Equal(t, uint16(0x0000), half.FromFloat32(0).Bits())
	require.Equal(t, uint16(0x8000), half.FromFloat32(negZero32()).Bits())
}

func TestFromFloat32_ClampToInfinity(t *testing.T) {
	// 65536 has exponent 16 > 15.
	require.Equal(t, half.PositiveInfinity, half.FromFloat32(65536))
	require.Equal(t, half.NegativeInfinity, half.FromFloat32(-1e10))
	// 65535 still has exponent 15; truncation keeps it finite.
	require.Equal(t, half.MaxValue, half.FromFloat32(65535))
}

func TestFromFloat32_FlushToZero(t *testing.T) {
	// Exponents below -14 never produce subnormals.
	require.Equal(t, half.Zero, half.FromFloat32(float32(math.Ldexp(1, -15))))
	require.Equal(t, half.Zero, half.FromFloat32(float32(math.Ldexp(1, -24))))
	require.Equal(t, half.NegativeZero, half.FromFloat32(-1e-6))
	require.Equal(t, half.Zero, half.FromFloat32(math.SmallestNonzeroFloat32))
}

func TestSubnormalAsymmetry(t *testing.T) {
	// Decode understands subnormals...
	got := half.MinValue.Float32()
	require.Equal(t, float32(math.Ldexp(1, -24)), got)
	require.True(t, half.MinValue.IsSubnormal())
	require.Equal(t, float32(math.Ldexp(1023, -24)), half.Value(0x03FF).Float32())
	require.Equal(t, float32(-math.Ldexp(1, -24)), half.Value(0x8001).Float32())

	// ...but encoding the same value flushes it to zero.
	require.Equal(t, half.Zero, half.FromFloat32(got))
}

func TestFromFloat32_NaN(t *testing.T) {
	nan := float32(math.NaN())
	got := half.FromFloat32(nan)
	require.True(t, got.IsNaN())
	require.Equal(t, half.NaN, got&^half.NegativeZero)

	negNaN := float32(math.Copysign(math.NaN(), -1))
	require.Equal(t, half.NaN|half.NegativeZero, half.FromFloat32(negNaN))
}

func TestFromFloat32_Truncates(t *testing.T) {
	// 1 + 2^-10 is representable; 1 + 1.5·2^-10 truncates down to it.
	step := float32(math.Ldexp(1, -10))
	require.Equal(t, half.Value(0x3C01), half.FromFloat32(1+step))
	require.Equal(t, half.Value(0x3C01), half.FromFloat32(1+1.5*step))
}

func TestFloat32_Special(t *testing.T) {
	require.True(t, math.IsInf(float64(half.PositiveInfinity.Float32()), 1))
	require.True(t, math.IsInf(float64(half.NegativeInfinity.Float32()), -1))
	require.True(t, math.IsNaN(float64(half.Value(0x7E00).Float32())))
	require.True(t, math.IsNaN(half.NaN.Float64()))

	nz := half.NegativeZero.Float32()
	require.Equal(t, float32(0), nz)
	require.True(t, math.Signbit(float64(nz)))
}

func TestRoundTrip_Normal(t *testing.T) {
	for _, f := range []float32{1, -1, 0.1, -0.1, 3.14159, 100.25, -1234.5, 0.00007, 65000, 2.5e-4} {
		got := half.FromFloat32(f).Float32()
		// truncation error is below one unit of the 10-bit significand
		require.InEpsilon(t, f, got, 1.0/1024, "value %v", f)
	}

	// Powers of two within the normal exponent range are exact.
	for e := half.MinExponent; e <= half.MaxExponent; e++ {
		f := float32(math.Ldexp(1, e))
		require.Equal(t, f, half.FromFloat32(f).Float32(), "2^%d", e)
	}
}

func TestIntegerConversions(t *testing.T) {
	require.Equal(t, half.Value(0x4900), half.FromInt(10))
	require.Equal(t, half.FromInt(int64(-3)), half.FromFloat64(-3))
	require.Equal(t, half.FromFloat(2.5), half.FromFloat32(2.5))

	require.Equal(t, int32(10), half.FromInt(10).Int())
	require.Equal(t, int32(-2), half.FromFloat32(-2.75).Int())
	require.Equal(t, int64(2048), half.FromInt(2048).Int64())
	require.Equal(t, int32(0), half.NaN.Int())
	require.Equal(t, int32(math.MaxInt32), half.PositiveInfinity.Int())
	require.Equal(t, int32(math.MinInt32), half.NegativeInfinity.Int())
}

func TestPredicates(t *testing.T) {
	require.True(t, half.PositiveInfinity.IsInf(0))
	require.True(t, half.PositiveInfinity.IsInf(1))
	require.False(t, half.PositiveInfinity.IsInf(-1))
	require.True(t, half.NegativeInfinity.IsInf(-1))
	require.False(t, half.NaN.IsInf(0))
	require.False(t, half.One.IsNaN())
	require.False(t, half.MinNormal.IsSubnormal())
	require.True(t, half.NegativeZero.Signbit())
	require.False(t, half.One.Signbit())
}

func TestString(t *testing.T) {
	require.Equal(t, "1", half.One.String())
	require.Equal(t, "-0.5", half.Value(0xB800).String())
	require.Equal(t, "65504", half.MaxValue.String())
	require.Equal(t, "+Inf", half.PositiveInfinity.String())
	require.Equal(t, "NaN", half.NaN.String())
}

func TestEncodingBinaryAndCBOR(t *testing.T) {
	v := half.FromFloat32(-1.5)

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0xBE, 0x00}, data)

	var back half.Value
	require.NoError(t, back.UnmarshalBinary(data))
	require.Equal(t, v, back)

	_, err = half.ReadBinary([]byte{0x01}, nil)
	require.ErrorIs(t, err, half.ErrShortBuffer)

	for _, h := range []half.Value{half.Zero, half.One, half.NaN, half.NegativeInfinity, 0xFFFF} {
		var buf bytes.Buffer
		require.NoError(t, h.MarshalCBOR(&buf))

		var got half.Value
		require.NoError(t, got.UnmarshalCBOR(&buf))
		require.Equal(t, h, got)
	}

	// 0x1a 00 01 00 00 = unsigned 65536, too wide for a half pattern.
	var h half.Value
	require.Error(t, h.UnmarshalCBOR(bytes.NewReader([]byte{0x1a, 0x00, 0x01, 0x00, 0x00})))
}
