// SPDX-License-Identifier: MIT

package fixed

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// ErrShortBuffer is returned when a binary decode is given fewer than Bytes bytes.
var ErrShortBuffer = errors.New("fixed: short buffer")

var (
	_ cbg.CBORMarshaler   = Value(0)
	_ cbg.CBORUnmarshaler = (*Value)(nil)
)

// AppendBinary appends the 4-byte representation of v in the given byte order.
func AppendBinary(dst []byte, order binary.AppendByteOrder, v Value) []byte {
	return order.AppendUint32(dst, uint32(v))
}

// ReadBinary decodes a Value from the first Bytes bytes of src.
func ReadBinary(src []byte, order binary.ByteOrder) (Value, error) {
	if len(src) < Bytes {
		return Zero, fmt.Errorf("ReadBinary: need %d bytes, have %d: %w", Bytes, len(src), ErrShortBuffer)
	}

	return Value(int32(order.Uint32(src))), nil
}

// MarshalBinary encodes v as 4 big-endian bytes.
func (v Value) MarshalBinary() ([]byte, error) {
	return AppendBinary(make([]byte, 0, Bytes), binary.BigEndian, v), nil
}

// UnmarshalBinary decodes 4 big-endian bytes into v.
func (v *Value) UnmarshalBinary(data []byte) error {
	d, err := ReadBinary(data, binary.BigEndian)
	if err != nil {
		return err
	}
	*v = d

	return nil
}

// MarshalCBOR writes the raw bits as a CBOR integer (major type 0 or 1).
func (v Value) MarshalCBOR(w io.Writer) error {
	cw := cbg.NewCborWriter(w)
	if v >= 0 {
		return cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v))
	}

	return cw.WriteMajorTypeHeader(cbg.MajNegativeInt, uint64(-int64(v)-1))
}

// UnmarshalCBOR reads a CBOR integer that fits in 32 signed bits.
func (v *Value) UnmarshalCBOR(r io.Reader) (err error) {
	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	switch maj {
	case cbg.MajUnsignedInt:
		if extra > math.MaxInt32 {
			return xerrors.Errorf("fixed value %d overflows int32", extra)
		}
		*v = Value(int32(extra))
	case cbg.MajNegativeInt:
		if extra > math.MaxInt32 {
			return xerrors.Errorf("fixed value -%d-1 overflows int32", extra)
		}
		*v = Value(int32(-int64(extra) - 1))
	default:
		return xerrors.Errorf("wrong type for fixed value field: %d", maj)
	}

	return nil
}
