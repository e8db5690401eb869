// Package glkit is a small numeric toolkit for graphics code: the compact
// number formats GPUs and embedded pipelines exchange, and the float32 vector
// and matrix math used to build OpenGL-style transforms.
//
// 🚀 What is in the box?
//
//	• fixed/   Q16.16 fixed-point values (conversions, arithmetic, Newton sqrt)
//	• half/    IEEE-style half floats (conversions, predicates, bulk codec)
//	• vector/  float32 vectors (dot, cross, length, normalize, windowed copies)
//	• matrix/  dense float32 matrices (algebra, Gauss–Jordan inverse,
//	           4×4 transform builders, column-major upload buffers)
//	• cmd/glconv  command-line converter for the above formats
//
// ✨ Design notes
//
//   - Row-major storage, column vectors, right-multiplied compound transforms
//     (m.Translate(...) applies m = m × T).
//   - Caller errors on shapes come back as sentinel errors (errors.Is); bit
//     codecs follow narrow contracts and never fail.
//   - A matrix allocates its scratch buffers once, on the first compound
//     transform; later transforms and inversions do not allocate.
//   - Every value type has a CBOR encoding for compact storage and transport.
//
// Quick start:
//
//	m, _ := matrix.NewIdentity(4)
//	_ = m.Ortho2D(0, 640, 0, 480)
//	p, _ := matrix.MulVec(m, vector.Of(640, 480, 0, 1), nil) // 1 1 0 1
//
// Runnable scenarios live under examples/.
package glkit
