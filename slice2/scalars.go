package slice2

import (
	"github.com/wippyai/slice-encoding/codec"
	"github.com/wippyai/slice-encoding/varint"
)

// DecodeInt8 decodes an int8.
func DecodeInt8(d *codec.Decoder[Encoding]) (int8, error) {
	return codec.ReadFixed[int8](d.Reader)
}

// EncodeInt8 encodes v on 1 byte.
func EncodeInt8(e *codec.Encoder[Encoding], v int8) error {
	return codec.WriteFixed(e.Writer, v)
}

// DecodeUint16 decodes a uint16 (2 bytes, little endian).
func DecodeUint16(d *codec.Decoder[Encoding]) (uint16, error) {
	return codec.ReadFixed[uint16](d.Reader)
}

// EncodeUint16 encodes v on 2 bytes, little endian.
func EncodeUint16(e *codec.Encoder[Encoding], v uint16) error {
	return codec.WriteFixed(e.Writer, v)
}

// DecodeUint32 decodes a uint32 (4 bytes, little endian).
func DecodeUint32(d *codec.Decoder[Encoding]) (uint32, error) {
	return codec.ReadFixed[uint32](d.Reader)
}

// EncodeUint32 encodes v on 4 bytes, little endian.
func EncodeUint32(e *codec.Encoder[Encoding], v uint32) error {
	return codec.WriteFixed(e.Writer, v)
}

// DecodeUint64 decodes a uint64 (8 bytes, little endian).
func DecodeUint64(d *codec.Decoder[Encoding]) (uint64, error) {
	return codec.ReadFixed[uint64](d.Reader)
}

// EncodeUint64 encodes v on 8 bytes, little endian.
func EncodeUint64(e *codec.Encoder[Encoding], v uint64) error {
	return codec.WriteFixed(e.Writer, v)
}

// DecodeVarInt32 decodes a varint32. Values outside [math.MinInt32,
// math.MaxInt32] fail with an out_of_range error.
func DecodeVarInt32(d *codec.Decoder[Encoding]) (int32, error) {
	return varint.ReadInt32(d.Reader)
}

// EncodeVarInt32 encodes v as a varint32, on 1 to 8 bytes.
func EncodeVarInt32(e *codec.Encoder[Encoding], v int32) error {
	return varint.WriteInt32(e.Writer, v)
}

// DecodeVarUint32 decodes a varuint32. Values above math.MaxUint32 fail with
// an out_of_range error.
func DecodeVarUint32(d *codec.Decoder[Encoding]) (uint32, error) {
	return varint.ReadUint32(d.Reader)
}

// EncodeVarUint32 encodes v as a varuint32, on 1 to 8 bytes.
func EncodeVarUint32(e *codec.Encoder[Encoding], v uint32) error {
	return varint.WriteUint32(e.Writer, v)
}

// DecodeVarInt62 decodes a varint62, a signed integer in
// [varint.Int62Min, varint.Int62Max].
func DecodeVarInt62(d *codec.Decoder[Encoding]) (int64, error) {
	return varint.ReadInt62(d.Reader)
}

// EncodeVarInt62 encodes v as a varint62. Values outside the 62-bit range
// fail with an out_of_range error.
func EncodeVarInt62(e *codec.Encoder[Encoding], v int64) error {
	return varint.WriteInt62(e.Writer, v)
}

// DecodeVarUint62 decodes a varuint62.
func DecodeVarUint62(d *codec.Decoder[Encoding]) (uint64, error) {
	return varint.ReadUint62(d.Reader)
}

// EncodeVarUint62 encodes v as a varuint62. Values above varint.Uint62Max
// fail with an out_of_range error.
func EncodeVarUint62(e *codec.Encoder[Encoding], v uint64) error {
	return varint.WriteUint62(e.Writer, v)
}
