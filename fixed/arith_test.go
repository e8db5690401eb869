// SPDX-License-Identifier: MIT
package fixed_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/glkit/fixed"
	"github.com/stretchr/testify/require"
)

func TestAddSub_Wraparound(t *testing.T) {
	a, b := fixed.FromFloat64(1.5), fixed.FromFloat64(2.25)
	require.Equal(t, fixed.FromFloat64(3.75), fixed.Add(a, b))
	require.Equal(t, fixed.FromFloat64(-0.75), fixed.Sub(a, b))
	require.Equal(t, fixed.FromFloat64(3.75), a.Add(b))
	require.Equal(t, fixed.FromFloat64(-0.75), a.Sub(b))

	// No saturation: MaxValue + MinValue wraps to the most negative value.
	require.Equal(t, fixed.FromBits(math.MinInt32), fixed.Add(fixed.MaxValue, fixed.MinValue))
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"integers", 3, 4, 12},
		{"fractions", 0.5, 0.25, 0.125},
		{"negative", -2.5, 4, -10},
		{"both negative", -1.5, -1.5, 2.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fixed.Mul(fixed.FromFloat64(tc.a), fixed.FromFloat64(tc.b))
			require.Equal(t, fixed.FromFloat64(tc.want), got)
		})
	}

	// 64-bit intermediate: 200·200 = 40000 overflows Q16.16 and keeps the low 32 bits.
	big := fixed.FromInt(200)
	wide := int64(40000) << 16
	require.Equal(t, fixed.FromBits(int32(wide)), fixed.Mul(big, big))
	require.Equal(t, fixed.FromBits(-1673527296), fixed.Mul(big, big))
	require.Equal(t, fixed.FromInt(6), fixed.FromInt(2).Mul(fixed.FromInt(3)))
}

func TestDiv(t *testing.T) {
	two := fixed.FromInt(2)
	require.Equal(t, int32(1), fixed.Div(two, two).Int())

	require.Equal(t, fixed.FromFloat64(0.5), fixed.Div(fixed.One, two))
	require.Equal(t, fixed.FromFloat64(-2.5), fixed.Div(fixed.FromInt(5), fixed.FromInt(-2)))
	require.Equal(t, fixed.FromFloat64(1.5), fixed.FromInt(3).Div(two))

	// 1/3 truncates toward zero: 65536/3 = 21845.33 -> 21845.
	require.Equal(t, fixed.FromBits(21845), fixed.Div(fixed.One, fixed.FromInt(3)))
	require.Equal(t, fixed.FromBits(-21845), fixed.Div(fixed.FromInt(-1), fixed.FromInt(3)))
}

func TestDiv_ByZeroPanics(t *testing.T) {
	require.Panics(t, func() { _ = fixed.Div(fixed.One, fixed.Zero) })
}

func TestSqrt(t *testing.T) {
	require.Equal(t, fixed.FromInt(2), fixed.Sqrt(fixed.FromInt(4)))
	require.Equal(t, fixed.FromInt(4), fixed.Sqrt(fixed.FromInt(16)))
	require.Equal(t, fixed.FromInt(2), fixed.FromInt(4).Sqrt())

	require.InDelta(t, math.Sqrt2, fixed.Sqrt(fixed.FromInt(2)).Float64(), 1e-4)
	require.InDelta(t, 10.0, fixed.Sqrt(fixed.FromInt(100)).Float64(), 1e-3)
}

func TestSqrt_ZeroPanics(t *testing.T) {
	require.Panics(t, func() { _ = fixed.Sqrt(fixed.Zero) })
}
