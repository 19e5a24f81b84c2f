package sliceencoding

import (
	"github.com/wippyai/slice-encoding/cursor"
)

// Encoding selects a generation of the Slice wire format.
//
// Implementations are stateless marker types used as the type argument of
// codec.Decoder and codec.Encoder. The size rule is the only thing that
// differs between generations for the constructs every generation shares, so
// it is the single method pair a new generation has to provide.
type Encoding interface {
	// String names the generation, e.g. "Slice2".
	String() string

	// DecodeSize reads a collection element count or a string byte length.
	DecodeSize(r *cursor.Reader) (int, error)

	// EncodeSize writes a collection element count or a string byte length.
	EncodeSize(size int, w *cursor.Writer) error
}
