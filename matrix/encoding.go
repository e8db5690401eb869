// SPDX-License-Identifier: MIT

// Package matrix - CBOR codec.
//
// Wire format: a 3-element array [rows, cols, values] where values is an array
// of rows*cols unsigned integers holding float32 bit patterns in column-major
// order (the same order as StoreFloats). Options and scratch are not encoded.

package matrix

import (
	"io"
	"math"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// MaxEncodedElements bounds rows*cols accepted by UnmarshalCBOR.
const MaxEncodedElements = 1 << 20

var (
	_ cbg.CBORMarshaler   = (*Dense)(nil)
	_ cbg.CBORUnmarshaler = (*Dense)(nil)
)

// MarshalCBOR writes m in the [rows, cols, values] layout; nil is CBOR null.
func (m *Dense) MarshalCBOR(w io.Writer) error {
	if m == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 3); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(m.r)); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(m.c)); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(m.data))); err != nil {
		return err
	}
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(math.Float32bits(m.data[i*m.c+j]))); err != nil {
				return xerrors.Errorf("writing element (%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}

// UnmarshalCBOR decodes into m. A zero Dense adopts the encoded shape with
// default options; an allocated m keeps its shape, options and scratch, and
// rejects any other shape with ErrDimensionMismatch before reading elements.
// CBOR null leaves m untouched.
func (m *Dense) UnmarshalCBOR(r io.Reader) (err error) {
	cr := cbg.NewCborReader(r)

	b, err := cr.ReadByte()
	if err != nil {
		return err
	}
	if b == cbg.CborNull[0] {
		return nil
	}
	if err := cr.UnreadByte(); err != nil {
		return err
	}

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return xerrors.Errorf("cbor input should be of type array")
	}
	if extra != 3 {
		return xerrors.Errorf("cbor input had wrong number of fields: %d", extra)
	}

	rows, err := readDimension(cr, "rows")
	if err != nil {
		return err
	}
	cols, err := readDimension(cr, "cols")
	if err != nil {
		return err
	}
	if rows*cols > MaxEncodedElements {
		return xerrors.Errorf("matrix %dx%d exceeds %d elements", rows, cols, MaxEncodedElements)
	}
	if m.data != nil && (rows != m.r || cols != m.c) {
		return xerrors.Errorf("decoding %dx%d into %dx%d: %w", rows, cols, m.r, m.c, ErrDimensionMismatch)
	}

	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return xerrors.Errorf("expected array for values: %d", maj)
	}
	if extra != uint64(rows*cols) {
		return xerrors.Errorf("values length %d does not match %dx%d: %w", extra, rows, cols, ErrDimensionMismatch)
	}

	colMajor := make([]float32, rows*cols)
	for k := range colMajor {
		maj, extra, err = cr.ReadHeader()
		if err != nil {
			return err
		}
		if maj != cbg.MajUnsignedInt || extra > math.MaxUint32 {
			return xerrors.Errorf("element %d is not a float32 bit pattern", k)
		}
		colMajor[k] = math.Float32frombits(uint32(extra))
	}

	if m.data == nil {
		*m = *newDense(rows, cols, defaultOptions())
	}

	return m.LoadFloats(colMajor)
}

func readDimension(cr *cbg.CborReader, field string) (int, error) {
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return 0, err
	}
	if maj != cbg.MajUnsignedInt {
		return 0, xerrors.Errorf("wrong type for %s field: %d", field, maj)
	}
	if extra == 0 || extra > MaxEncodedElements {
		return 0, xerrors.Errorf("%s %d: %w", field, extra, ErrInvalidDimensions)
	}

	return int(extra), nil
}
