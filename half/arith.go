// SPDX-License-Identifier: MIT

package half

// Add returns a + b computed in float32.
func Add(a, b Value) Value { return FromFloat32(a.Float32() + b.Float32()) }

// Sub returns a - b computed in float32.
func Sub(a, b Value) Value { return FromFloat32(a.Float32() - b.Float32()) }

// Mul returns a·b computed in float32.
func Mul(a, b Value) Value { return FromFloat32(a.Float32() * b.Float32()) }

// Div returns a/b computed in float32; division by zero yields a signed infinity or NaN.
func Div(a, b Value) Value { return FromFloat32(a.Float32() / b.Float32()) }

// Encode converts a slice of float32 to half values.
// dst must have length >= len(src).
func Encode(dst []Value, src []float32) {
	for i := range src {
		dst[i] = FromFloat32(src[i])
	}
}

// Decode converts a slice of half values to float32.
// dst must have length >= len(src).
func Decode(dst []float32, src []Value) {
	for i := range src {
		dst[i] = src[i].Float32()
	}
}
