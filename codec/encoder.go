package codec

import (
	"fmt"

	sliceencoding "github.com/wippyai/slice-encoding"
	"github.com/wippyai/slice-encoding/cursor"
)

// Encoder writes Slice-encoded values in encoding E.
//
// It embeds a cursor.Writer, so the byte-level write methods and Bytes are
// available directly.
type Encoder[E sliceencoding.Encoding] struct {
	*cursor.Writer

	encoding E
}

// NewEncoder creates an Encoder. By default it writes into a growable buffer.
func NewEncoder[E sliceencoding.Encoding](opts ...EncoderOption) *Encoder[E] {
	var cfg encoderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder[E]{Writer: cfg.writer()}
}

// Encoding returns the encoding this Encoder writes.
func (e *Encoder[E]) Encoding() E {
	return e.encoding
}

// EncodeSize writes a size using the rule of encoding E.
func (e *Encoder[E]) EncodeSize(size int) error {
	return e.encoding.EncodeSize(size, e.Writer)
}

// Encode encodes v into the Encoder.
func (e *Encoder[E]) Encode(v Encodable[E]) error {
	return v.EncodeSlice(e)
}

// MustEncode is like Encode but panics on failure. Use it only where failure
// is a programming error, such as encoding into a growable buffer values
// already checked against their ranges.
func (e *Encoder[E]) MustEncode(v Encodable[E]) {
	if err := v.EncodeSlice(e); err != nil {
		panic(fmt.Errorf("codec: failed to encode: %w", err))
	}
}
