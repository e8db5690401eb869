// SPDX-License-Identifier: MIT

package half

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
var ErrShortBuffer = errors.New("half: short buffer")

var (
	_ cbg.CBORMarshaler   = Value(0)
	_ cbg.CBORUnmarshaler = (*Value)(nil)
)

// AppendBinary appends the 2-byte pattern of h in the given byte order.
func AppendBinary(dst []byte, order binary.AppendByteOrder, h Value) []byte {
	return order.AppendUint16(dst, uint16(h))
}

// ReadBinary decodes a Value from the first Bytes bytes of src.
func ReadBinary(src []byte, order binary.ByteOrder) (Value, error) {
	if len(src) < Bytes {
		return Zero, fmt.Errorf("ReadBinary: need %d bytes, have %d: %w", Bytes, len(src), ErrShortBuffer)
	}

	return Value(order.Uint16(src)), nil
}

// MarshalBinary encodes h as 2 big-endian bytes.
func (h Value) MarshalBinary() ([]byte, error) {
	return AppendBinary(make([]byte, 0, Bytes), binary.BigEndian, h), nil
}

// UnmarshalBinary decodes 2 big-endian bytes into h.
func (h *Value) UnmarshalBinary(data []byte) error {
	d, err := ReadBinary(data, binary.BigEndian)
	if err != nil {
		return err
	}
	*h = d

	return nil
}

// MarshalCBOR writes the bit pattern as an unsigned CBOR integer.
func (h Value) MarshalCBOR(w io.Writer) error {
	cw := cbg.NewCborWriter(w)

	return cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(h))
}

// UnmarshalCBOR reads an unsigned CBOR integer that fits in 16 bits.
func (h *Value) UnmarshalCBOR(r io.Reader) (err error) {
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

	if maj != cbg.MajUnsignedInt {
		return xerrors.Errorf("wrong type for half value field: %d", maj)
	}
	if extra > math.MaxUint16 {
		return xerrors.Errorf("half value %d overflows uint16", extra)
	}
	*h = Value(extra)

	return nil
}
