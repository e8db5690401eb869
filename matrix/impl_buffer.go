// SPDX-License-Identifier: MIT

// Package matrix - column-major bulk load/store.
//
// Purpose:
//   - Exchange matrix contents with linear buffers in the layout graphics APIs
//     expect: columns outer, rows inner, 4 bytes per float32.
//
// Behavior highlights:
//   - Only the first Rows()*Cols() values of a buffer are touched; longer
//     buffers are fine, shorter ones fail with ErrShortBuffer before any write.

package matrix

import (
	"encoding/binary"
	"math"
)

const (
	opLoadFloats  = "LoadFloats"
	opStoreFloats = "StoreFloats"
	opLoadBytes   = "LoadBytes"
	opStoreBytes  = "StoreBytes"

	// FloatBytes is the encoded width of one element.
	FloatBytes = 4
)

// Len returns the element count Rows()*Cols().
func (m *Dense) Len() int { return len(m.data) }

// LoadFloats reads Rows()*Cols() column-major values from src.
func (m *Dense) LoadFloats(src []float32) error {
	if err := ValidateBufferLen(len(src), len(m.data)); err != nil {
		return matrixErrorf(opLoadFloats, err)
	}
	var i, j, k int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			m.data[i*m.c+j] = src[k]
			k++
		}
	}

	return nil
}

// StoreFloats writes Rows()*Cols() column-major values into dst.
func (m *Dense) StoreFloats(dst []float32) error {
	if err := ValidateBufferLen(len(dst), len(m.data)); err != nil {
		return matrixErrorf(opStoreFloats, err)
	}
	var i, j, k int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			dst[k] = m.data[i*m.c+j]
			k++
		}
	}

	return nil
}

// LoadBytes reads Rows()*Cols() column-major float32 values from src using
// the given byte order.
func (m *Dense) LoadBytes(src []byte, order binary.ByteOrder) error {
	if err := ValidateBufferLen(len(src), len(m.data)*FloatBytes); err != nil {
		return matrixErrorf(opLoadBytes, err)
	}
	var i, j, off int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			m.data[i*m.c+j] = math.Float32frombits(order.Uint32(src[off:]))
			off += FloatBytes
		}
	}

	return nil
}

// StoreBytes writes Rows()*Cols() column-major float32 values into dst using
// the given byte order.
func (m *Dense) StoreBytes(dst []byte, order binary.ByteOrder) error {
	if err := ValidateBufferLen(len(dst), len(m.data)*FloatBytes); err != nil {
		return matrixErrorf(opStoreBytes, err)
	}
	var i, j, off int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			order.PutUint32(dst[off:], math.Float32bits(m.data[i*m.c+j]))
			off += FloatBytes
		}
	}

	return nil
}

// AppendBytes appends the column-major encoding of m to dst.
func (m *Dense) AppendBytes(dst []byte, order binary.AppendByteOrder) []byte {
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			dst = order.AppendUint32(dst, math.Float32bits(m.data[i*m.c+j]))
		}
	}

	return dst
}
