// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own two lazily allocated scratch matrices (transformation, result) of the same
//     shape, used by in-place compound operations without per-call allocation.
//
// AI-Hints:
//   - Scratch matrices are private; they never escape through the API and are
//     ignored by Equal, Clone and the encoders.
//   - In-place operations compute into the result scratch and then swap backing
//     slices with the receiver, so pointers to the receiver observe the new values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); scratch: O(r*c) once.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRows  = "Rows"  // ctor tag for NewFromRows
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major float32 matrix.
//   - r,c hold dimensions (rows, cols), fixed for the lifetime of the value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the policy captured at construction (tolerance, inverse path, logger).
//   - transformation and result are lazily allocated r×c scratch matrices.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float32 // contiguous row-major storage (len == r*c)
	opts Options   // captured policy; inherited by Clone and scratch

	transformation *Dense // scratch: builders write here before Transform
	result         *Dense // scratch: products land here before the swap
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and option capture.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Scratch matrices are not allocated here; the first compound operation does it.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int, opts ...Option) (*Dense, error) {
	return NewDense(n, n, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewSquare(n, opts...)
	if err != nil {
		return nil, err
	}
	m.LoadIdentity()

	return m, nil
}

// NewFromRows builds a matrix from row slices (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float32, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m := newDense(len(rows), c, gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf(ctxRows, i, len(row), ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// newDense allocates without validation; callers guarantee rows, cols > 0.
func newDense(rows, cols int, o Options) *Dense {
	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float32, rows*cols),
		opts: o,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same options, no scratch).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//   - Scratch matrices are not copied; the clone allocates its own on demand.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := newDense(m.r, m.c, m.opts)
	copy(cp.data, m.data)

	return cp
}

// Equal reports logical equality: same shape and element-wise equal values.
// Scratch contents are ignored. NaN never equals NaN.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write float32 shortest representations with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(float64(m.data[base+j]), 'g', -1, 32))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float32) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in row-major order.
//
// Errors:
//   - ErrNilMatrix when f is nil.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float32) float32) error {
	if f == nil {
		return denseErrorf(ctxApply, m.r, m.c, ErrNilMatrix)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return nil
}

// transformationScratch returns the lazily allocated builder scratch.
func (m *Dense) transformationScratch() *Dense {
	if m.transformation == nil {
		m.transformation = newDense(m.r, m.c, m.opts)
	}

	return m.transformation
}

// resultScratch returns the lazily allocated product scratch.
func (m *Dense) resultScratch() *Dense {
	if m.result == nil {
		m.result = newDense(m.r, m.c, m.opts)
	}

	return m.result
}

// adoptFrom swaps backing storage with a same-shaped scratch matrix.
func (m *Dense) adoptFrom(scratch *Dense) {
	m.data, scratch.data = scratch.data, m.data
}
