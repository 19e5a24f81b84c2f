package codec

import (
	"unicode/utf8"

	sliceencoding "github.com/wippyai/slice-encoding"
	"github.com/wippyai/slice-encoding/errors"
)

// Scalars shared by every encoding. Types that only exist in some
// generations, such as the Slice2 varints, live in that generation's package.

// DecodeBool decodes a bool. Only the byte values 0 and 1 are accepted.
func DecodeBool[E sliceencoding.Encoding](d *Decoder[E]) (bool, error) {
	pos := d.Position()
	b, err := d.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.New(errors.PhaseDecode, errors.KindIllegalValue).
		Type("bool").
		Value(b).
		Position(pos).
		Detail("bools can only have a numeric value of 0 or 1").
		Build()
}

// EncodeBool encodes v as a single byte, 0 or 1.
func EncodeBool[E sliceencoding.Encoding](e *Encoder[E], v bool) error {
	if v {
		return e.WriteByte(1)
	}
	return e.WriteByte(0)
}

// DecodeUint8 decodes a uint8.
func DecodeUint8[E sliceencoding.Encoding](d *Decoder[E]) (uint8, error) {
	return d.ReadByte()
}

// EncodeUint8 encodes v as-is.
func EncodeUint8[E sliceencoding.Encoding](e *Encoder[E], v uint8) error {
	return e.WriteByte(v)
}

// DecodeInt16 decodes an int16 (2 bytes, little endian).
func DecodeInt16[E sliceencoding.Encoding](d *Decoder[E]) (int16, error) {
	return ReadFixed[int16](d.Reader)
}

// EncodeInt16 encodes v on 2 bytes, little endian.
func EncodeInt16[E sliceencoding.Encoding](e *Encoder[E], v int16) error {
	return WriteFixed(e.Writer, v)
}

// DecodeInt32 decodes an int32 (4 bytes, little endian).
func DecodeInt32[E sliceencoding.Encoding](d *Decoder[E]) (int32, error) {
	return ReadFixed[int32](d.Reader)
}

// EncodeInt32 encodes v on 4 bytes, little endian.
func EncodeInt32[E sliceencoding.Encoding](e *Encoder[E], v int32) error {
	return WriteFixed(e.Writer, v)
}

// DecodeInt64 decodes an int64 (8 bytes, little endian).
func DecodeInt64[E sliceencoding.Encoding](d *Decoder[E]) (int64, error) {
	return ReadFixed[int64](d.Reader)
}

// EncodeInt64 encodes v on 8 bytes, little endian.
func EncodeInt64[E sliceencoding.Encoding](e *Encoder[E], v int64) error {
	return WriteFixed(e.Writer, v)
}

// DecodeFloat32 decodes an IEEE 754 binary32.
func DecodeFloat32[E sliceencoding.Encoding](d *Decoder[E]) (float32, error) {
	return ReadFixed[float32](d.Reader)
}

// EncodeFloat32 encodes v as an IEEE 754 binary32.
func EncodeFloat32[E sliceencoding.Encoding](e *Encoder[E], v float32) error {
	return WriteFixed(e.Writer, v)
}

// DecodeFloat64 decodes an IEEE 754 binary64.
func DecodeFloat64[E sliceencoding.Encoding](d *Decoder[E]) (float64, error) {
	return ReadFixed[float64](d.Reader)
}

// EncodeFloat64 encodes v as an IEEE 754 binary64.
func EncodeFloat64[E sliceencoding.Encoding](e *Encoder[E], v float64) error {
	return WriteFixed(e.Writer, v)
}

// DecodeString decodes a size-prefixed UTF-8 string. The string is copied
// out of the input, and its length is charged to the allocation limit.
func DecodeString[E sliceencoding.Encoding](d *Decoder[E]) (string, error) {
	n, err := d.DecodeSize()
	if err != nil {
		return "", err
	}
	pos := d.Position()
	p, err := d.ReadBytesExact(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		preview := p
		if len(preview) > 32 {
			preview = preview[:32]
		}
		return "", errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Type("string").
			Position(pos).
			Detail("encountered invalid utf-8 while decoding string: %x", preview).
			Build()
	}
	if err := d.IncreaseAllocationTotal(n); err != nil {
		return "", err
	}
	return string(p), nil
}

// EncodeString encodes v as its byte length followed by its UTF-8 bytes.
// Go strings may hold invalid UTF-8; such strings are rejected.
func EncodeString[E sliceencoding.Encoding](e *Encoder[E], v string) error {
	if !utf8.ValidString(v) {
		return errors.InvalidData(errors.PhaseEncode, "string", "string is not valid utf-8")
	}
	if err := e.EncodeSize(len(v)); err != nil {
		return err
	}
	return e.WriteString(v)
}

// DecodeBytes decodes a sequence<uint8> without copying. The returned slice
// aliases the Decoder's input.
func DecodeBytes[E sliceencoding.Encoding](d *Decoder[E]) ([]byte, error) {
	n, err := d.DecodeSize()
	if err != nil {
		return nil, err
	}
	return d.ReadBytesExact(n)
}

// EncodeBytes encodes p as a sequence<uint8>.
func EncodeBytes[E sliceencoding.Encoding](e *Encoder[E], p []byte) error {
	if err := e.EncodeSize(len(p)); err != nil {
		return err
	}
	return e.WriteBytes(p)
}
