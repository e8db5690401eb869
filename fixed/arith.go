// SPDX-License-Identifier: MIT

package fixed

// sqrtIterations is the fixed Newton budget used by Sqrt; there is no convergence test.
const sqrtIterations = 5

// Add returns a + b with 32-bit wraparound.
func Add(a, b Value) Value { return a + b }

// Sub returns a - b with 32-bit wraparound.
func Sub(a, b Value) Value { return a - b }

// Mul returns a·b. Both operands are widened to 64 bits, multiplied, shifted
// right by 16 (arithmetic) and narrowed back to 32 bits.
func Mul(a, b Value) Value {
	return Value(int32((int64(a) * int64(b)) >> Shift))
}

// Div returns a/b. The dividend is widened and pre-shifted by 16 bits before an
// integer division that truncates toward zero.
// A zero divisor panics with the runtime divide-by-zero error.
func Div(a, b Value) Value {
	return Value(int32((int64(a) << Shift) / int64(b)))
}

// Sqrt returns the square root of v.
//
// Because bits already carry a 2^16 factor, the Q16.16 root equals the integer
// root of bits·2^16. It is approximated with five Newton steps
// r = (r + N/r) >> 1 seeded with r = bits >> 1.
// v must be at least 2/65536; smaller or negative inputs divide by zero or
// produce meaningless results.
func Sqrt(v Value) Value {
	n := int64(v) << Shift
	r := int64(int32(v) >> 1)
	for i := 0; i < sqrtIterations; i++ {
		r = (r + n/r) >> 1
	}

	return Value(int32(r))
}

// Add returns v + o. See the package-level Add.
func (v Value) Add(o Value) Value { return Add(v, o) }

// Sub returns v - o.
func (v Value) Sub(o Value) Value { return Sub(v, o) }

// Mul returns v·o.
func (v Value) Mul(o Value) Value { return Mul(v, o) }

// Div returns v/o; panics when o is Zero.
func (v Value) Div(o Value) Value { return Div(v, o) }

// Sqrt returns the square root of v.
func (v Value) Sqrt() Value { return Sqrt(v) }
