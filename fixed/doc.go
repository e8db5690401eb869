// SPDX-License-Identifier: MIT

// Package fixed implements the Q16.16 fixed-point number format.
//
// A Value stores a real number r as the 32-bit signed integer r·2^16: the high
// 16 bits hold the integer part and the low 16 bits the fraction, so the
// resolution is 1/65536 and the range is roughly [-32768, 32768).
//
// Contract summary:
//   - Add and Sub are plain 32-bit two's-complement arithmetic (wraparound, no saturation).
//   - Mul and Div widen to 64 bits before rescaling and then narrow back to 32 bits;
//     results that do not fit are silently truncated.
//   - Integer decoders (Int, Int16, Int64) use an arithmetic right shift, so negative
//     values round toward negative infinity.
//   - Div and Sqrt perform no domain checks: a zero divisor (or Sqrt of bits < 2)
//     triggers the runtime integer divide-by-zero panic.
//
// Values are plain integers and can be embedded verbatim into binary formats;
// MarshalBinary, MarshalCBOR and their counterparts are provided for convenience.
package fixed
