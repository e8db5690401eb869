// SPDX-License-Identifier: MIT

package vector

import (
	"io"
	"math"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// MaxEncodedLength bounds the element count accepted by UnmarshalCBOR.
const MaxEncodedLength = 1 << 20

var (
	_ cbg.CBORMarshaler   = (*Vector)(nil)
	_ cbg.CBORUnmarshaler = (*Vector)(nil)
)

// MarshalCBOR writes v as a CBOR array of float32 bit patterns.
// A nil vector is written as CBOR null.
func (v *Vector) MarshalCBOR(w io.Writer) error {
	if v == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, uint64(len(v.values))); err != nil {
		return err
	}
	for _, x := range v.values {
		if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(math.Float32bits(x))); err != nil {
			return err
		}
	}

	return nil
}

// UnmarshalCBOR decodes an array into v. A zero Vector adopts the encoded
// length; any other v must match it or gets ErrSizeMismatch and is left as is.
// CBOR null leaves v untouched.
func (v *Vector) UnmarshalCBOR(r io.Reader) (err error) {
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
	if extra > MaxEncodedLength {
		return xerrors.Errorf("vector length %d exceeds limit %d", extra, MaxEncodedLength)
	}
	if v.values != nil && int(extra) != len(v.values) {
		return xerrors.Errorf("decoding %d values into length %d: %w", extra, len(v.values), ErrSizeMismatch)
	}

	values, err := readFloat32Bits(cr, int(extra))
	if err != nil {
		return err
	}
	if v.values != nil {
		copy(v.values, values)
		return nil
	}
	v.values = values

	return nil
}

func readFloat32Bits(cr *cbg.CborReader, n int) ([]float32, error) {
	values := make([]float32, n)
	for i := range values {
		maj, extra, err := cr.ReadHeader()
		if err != nil {
			return nil, err
		}
		if maj != cbg.MajUnsignedInt {
			return nil, xerrors.Errorf("wrong type for element %d: %d", i, maj)
		}
		if extra > math.MaxUint32 {
			return nil, xerrors.Errorf("element %d: %d overflows float32 bits", i, extra)
		}
		values[i] = math.Float32frombits(uint32(extra))
	}

	return values, nil
}
