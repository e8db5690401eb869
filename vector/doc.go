// SPDX-License-Identifier: MIT

// Package vector provides a fixed-length float32 vector used by the matrix
// package for matrix×vector products and by the look-at camera builder.
//
// A Vector owns its buffer: every constructor copies, and the length is fixed
// for the lifetime of the value. Element access (At, Set) and the windowed bulk
// copies are checked by the Go runtime only; out-of-range indices panic.
// Shape errors between operands (Dot, Cross) are reported as errors.
//
// Numeric domain errors are not guarded: normalizing a zero vector fills it
// with NaN, exactly as 0·(1/0) does in float32.
//
// Vectors are not safe for concurrent mutation.
package vector
