// SPDX-License-Identifier: MIT
// Package fixed_test contains unit tests for the Q16.16 codec.
package fixed_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/glkit/fixed"
	"github.com/stretchr/testify/require"
)

func TestFromInt_RoundTrip(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 2, 100, -100, 12345, -12345, 32767, -32768} {
		v := fixed.FromInt(n)
		require.Equal(t, n, v.Int(), "round trip of %d", n)
		require.Equal(t, int64(n), v.Int64())
		require.Equal(t, int16(n), v.Int16())
	}
}

func TestFromInt_SourceWidths(t *testing.T) {
	require.Equal(t, fixed.One, fixed.FromInt(int16(1)))
	require.Equal(t, fixed.One, fixed.FromInt(int64(1)))
	require.Equal(t, fixed.FromBits(3<<16), fixed.FromInt(uint8(3)))

	// 2^15 does not fit: the shifted value wraps into the sign bit.
	require.Equal(t, fixed.FromBits(math.MinInt32), fixed.FromInt(int32(1<<15)))
	// 64-bit sources keep only the low 32 bits after the shift.
	require.Equal(t, fixed.FromBits(0), fixed.FromInt(int64(1)<<16))
}

func TestFromFloat_RoundTrip(t *testing.T) {
	const ulp = 1.0 / 65536
	for _, f := range []float64{0, 0.5, -0.5, 1.25, -1.25, math.Pi, -math.E, 1234.56789, -32767.5, 1e-5} {
		v := fixed.FromFloat64(f)
		require.InDelta(t, f, v.Float64(), ulp, "float64 %v", f)

		v32 := fixed.FromFloat32(float32(f))
		require.InDelta(t, float32(f), v32.Float32(), ulp, "float32 %v", f)
	}
	require.Equal(t, fixed.FromFloat64(2.5), fixed.FromFloat(float32(2.5)))
}

func TestFromFloat_Truncation(t *testing.T) {
	// 1.5 ulp truncates toward zero on both signs.
	require.Equal(t, fixed.FromBits(1), fixed.FromFloat64(1.5/65536))
	require.Equal(t, fixed.FromBits(-1), fixed.FromFloat64(-1.5/65536))
	require.Equal(t, fixed.Half, fixed.FromFloat32(0.5))
}

func TestFromFloat_SpecialValues(t *testing.T) {
	require.Equal(t, fixed.Zero, fixed.FromFloat64(math.NaN()))
	require.Equal(t, fixed.MaxValue, fixed.FromFloat64(math.Inf(1)))
	require.Equal(t, fixed.FromBits(math.MinInt32), fixed.FromFloat64(math.Inf(-1)))
	require.Equal(t, fixed.MaxValue, fixed.FromFloat64(1e9))
}

func TestIntDecode_FloorSemantics(t *testing.T) {
	// -0.5 has bits 0xFFFF8000; the arithmetic shift yields -1, not 0.
	v := fixed.FromFloat64(-0.5)
	require.Equal(t, int32(-1), v.Int())
	require.Equal(t, int64(-1), v.Int64())
	require.Equal(t, int16(-1), v.Int16())

	require.Equal(t, int32(1), fixed.FromFloat64(1.99).Int())
	require.Equal(t, int32(-2), fixed.FromFloat64(-1.01).Int())
}

func TestFloatDecode_Exact(t *testing.T) {
	require.Equal(t, 1.0, fixed.One.Float64())
	require.Equal(t, 1.0/65536, fixed.MinValue.Float64())
	require.Equal(t, float32(0.5), fixed.Half.Float32())
	require.Equal(t, -1.0, fixed.FromInt(-1).Float64())
}

func TestString(t *testing.T) {
	require.Equal(t, "1", fixed.One.String())
	require.Equal(t, "-2.5", fixed.FromFloat64(-2.5).String())
	require.Equal(t, "0.5", fixed.Half.String())
}

func TestBinaryEncoding(t *testing.T) {
	v := fixed.FromFloat64(-3.25)

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, fixed.Bytes)
	require.Equal(t, uint32(0xFFFCC000), binary.BigEndian.Uint32(data))

	var got fixed.Value
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, v, got)

	le := fixed.AppendBinary(nil, binary.LittleEndian, fixed.One)
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, le)
	back, err := fixed.ReadBinary(le, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, fixed.One, back)

	_, err = fixed.ReadBinary([]byte{1, 2}, binary.BigEndian)
	require.ErrorIs(t, err, fixed.ErrShortBuffer)
}

func TestCBOREncoding(t *testing.T) {
	for _, v := range []fixed.Value{fixed.Zero, fixed.One, fixed.MaxValue, fixed.FromBits(math.MinInt32), fixed.FromFloat64(-7.125)} {
		var buf bytes.Buffer
		require.NoError(t, v.MarshalCBOR(&buf))

		var got fixed.Value
		require.NoError(t, got.UnmarshalCBOR(&buf))
		require.Equal(t, v, got)
	}
}

func TestCBOREncoding_Overflow(t *testing.T) {
	// 0x1a = major type 0 with a 4-byte argument: 0x80000000 does not fit in int32.
	var v fixed.Value
	err := v.UnmarshalCBOR(bytes.NewReader([]byte{0x1a, 0x80, 0x00, 0x00, 0x00}))
	require.Error(t, err)

	// 0x60 = empty text string: wrong major type.
	err = v.UnmarshalCBOR(bytes.NewReader([]byte{0x60}))
	require.Error(t, err)
}
