// SPDX-License-Identifier: MIT

// Package matrix - elementary row and column operations.
//
// Purpose:
//   - Whole-row/column reads and writes against caller-owned buffers.
//   - The elementary operations of Gaussian elimination (add a multiple of one
//     row to another, scale, exchange) exposed on the public surface.
//
// Determinism:
//   - Fixed loop order; no allocations.

package matrix

import "fmt"

const (
	ctxRow         = "Row"
	ctxSetRow      = "SetRow"
	ctxColumn      = "Column"
	ctxSetColumn   = "SetColumn"
	ctxAddRow      = "AddRow"
	ctxAddColumn   = "AddColumn"
	ctxScaleRow    = "ScaleRow"
	ctxScaleColumn = "ScaleColumn"
	ctxSwapRows    = "SwapRows"
)

// lineErrorf wraps err with a Dense method tag and the line index.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}

func (m *Dense) checkRow(method string, rows ...int) error {
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return lineErrorf(method, i, ErrOutOfRange)
		}
	}

	return nil
}

func (m *Dense) checkColumn(method string, cols ...int) error {
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return lineErrorf(method, j, ErrOutOfRange)
		}
	}

	return nil
}

// Row copies row i into dst[:Cols()].
//
// Errors: ErrOutOfRange, ErrShortBuffer.
func (m *Dense) Row(i int, dst []float32) error {
	if err := m.checkRow(ctxRow, i); err != nil {
		return err
	}
	if err := ValidateBufferLen(len(dst), m.c); err != nil {
		return lineErrorf(ctxRow, i, err)
	}
	copy(dst, m.data[i*m.c:(i+1)*m.c])

	return nil
}

// SetRow overwrites row i with src[:Cols()].
//
// Errors: ErrOutOfRange, ErrShortBuffer.
func (m *Dense) SetRow(i int, src []float32) error {
	if err := m.checkRow(ctxSetRow, i); err != nil {
		return err
	}
	if err := ValidateBufferLen(len(src), m.c); err != nil {
		return lineErrorf(ctxSetRow, i, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], src)

	return nil
}

// Column copies column j into dst[:Rows()].
//
// Errors: ErrOutOfRange, ErrShortBuffer.
func (m *Dense) Column(j int, dst []float32) error {
	if err := m.checkColumn(ctxColumn, j); err != nil {
		return err
	}
	if err := ValidateBufferLen(len(dst), m.r); err != nil {
		return lineErrorf(ctxColumn, j, err)
	}
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}

	return nil
}

// SetColumn overwrites column j with src[:Rows()].
//
// Errors: ErrOutOfRange, ErrShortBuffer.
func (m *Dense) SetColumn(j int, src []float32) error {
	if err := m.checkColumn(ctxSetColumn, j); err != nil {
		return err
	}
	if err := ValidateBufferLen(len(src), m.r); err != nil {
		return lineErrorf(ctxSetColumn, j, err)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = src[i]
	}

	return nil
}

// AddRow performs row[i] += k·row[other].
func (m *Dense) AddRow(i, other int, k float32) error {
	if err := m.checkRow(ctxAddRow, i, other); err != nil {
		return err
	}
	addScaled(m.data[i*m.c:(i+1)*m.c], m.data[other*m.c:(other+1)*m.c], k)

	return nil
}

// AddColumn performs col[j] += k·col[other].
func (m *Dense) AddColumn(j, other int, k float32) error {
	if err := m.checkColumn(ctxAddColumn, j, other); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] += k * m.data[i*m.c+other]
	}

	return nil
}

// ScaleRow multiplies every element of row i by k.
func (m *Dense) ScaleRow(i int, k float32) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}
	scale(m.data[i*m.c:(i+1)*m.c], k)

	return nil
}

// ScaleColumn multiplies every element of column j by k.
func (m *Dense) ScaleColumn(j int, k float32) error {
	if err := m.checkColumn(ctxScaleColumn, j); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] *= k
	}

	return nil
}

// SwapRows exchanges rows i and k.
func (m *Dense) SwapRows(i, k int) error {
	if err := m.checkRow(ctxSwapRows, i, k); err != nil {
		return err
	}
	swapLines(m.data, m.c, i, k)

	return nil
}

// ---------- flat kernels shared with the elimination code ----------

// addScaled performs dst += k·src over equal-length slices.
func addScaled(dst, src []float32, k float32) {
	for j := range dst {
		dst[j] += k * src[j]
	}
}

func scale(dst []float32, k float32) {
	for j := range dst {
		dst[j] *= k
	}
}

// swapLines exchanges rows i and k of a row-major buffer with stride c.
func swapLines(data []float32, c, i, k int) {
	if i == k {
		return
	}
	a, b := data[i*c:(i+1)*c], data[k*c:(k+1)*c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}
