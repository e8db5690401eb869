// SPDX-License-Identifier: MIT

// Package half implements the 16-bit half-precision floating-point format
// (1 sign bit, 5 exponent bits with bias 15, 10 significand bits).
//
// The format is a storage type: arithmetic decodes both operands to float32,
// computes there and re-encodes, so precision and special-value behavior match
// float32 arithmetic rather than true binary16 arithmetic.
//
// Range handling is asymmetric. Decoding understands the full format including
// subnormals (exponent field 0, value = significand·2^-24). Encoding truncates
// the significand and flushes every input whose binary exponent is below -14
// to a signed zero, so it never produces a subnormal bit pattern. Inputs whose
// exponent exceeds 15 are clamped to a signed infinity. NaN payloads are not
// preserved: every NaN encodes to the canonical pattern 0x7FFF plus its sign.
package half
