// Package matrix provides a small dense float32 matrix engine for real-time
// 3D graphics.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols matrix with safe accessors, elementary
//     row/column operations and destination-passing kernels (Add, Multiply,
//     MulVec, Transpose, Inverse, Copy, SubCopy, Swap).
//   - 4×4 transform builders (translation, scale, rotations, perspective and
//     orthographic projections, look-at, first-person camera) and in-place
//     compound transforms that right-multiply the receiver.
//   - Inversion by Gauss–Jordan elimination with pivot search, with closed-form
//     3×3 and 4×4 fast paths.
//   - Column-major bulk load/store against float and byte buffers, and a CBOR
//     codec for wire formats.
//
// Each Dense owns two lazily allocated scratch matrices of its own shape. After
// the first compound operation, Transform and the instance transforms run
// without allocating. Scratch state is private and never shared between
// matrices, so distinct matrices may be used from distinct goroutines; a single
// matrix must not be mutated concurrently.
//
// See the examples in this package for usage patterns.
package matrix
