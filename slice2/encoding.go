// Package slice2 provides the Slice2 encoding and the scalar types only
// Slice2 supports.
//
// Sizes are encoded as varuint62. Functions in this package take a
// *codec.Decoder[Encoding] or *codec.Encoder[Encoding], so a Slice1 codec
// cannot call them.
package slice2

import (
	"math"

	"github.com/wippyai/slice-encoding/cursor"
	"github.com/wippyai/slice-encoding/errors"
	"github.com/wippyai/slice-encoding/varint"
)

// Encoding is the Slice2 encoding.
type Encoding struct{}

func (Encoding) String() string { return "Slice2" }

// DecodeSize reads a size encoded as a varuint62.
func (Encoding) DecodeSize(r *cursor.Reader) (int, error) {
	pos := r.Position()
	v, err := varint.ReadUint62(r)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Type("size").
			Value(v).
			Position(pos).
			Detail("size %d does not fit in an int", v).
			Build()
	}
	return int(v), nil
}

// EncodeSize writes size as a varuint62.
func (Encoding) EncodeSize(size int, w *cursor.Writer) error {
	if size < 0 {
		return errors.New(errors.PhaseEncode, errors.KindOutOfRange).
			Type("size").
			Value(size).
			Range(0, varint.Uint62Max).
			Detail("sizes cannot be negative").
			Build()
	}
	return varint.WriteUint62(w, uint64(size))
}
