package codec

import (
	"fmt"

	sliceencoding "github.com/wippyai/slice-encoding"
)

// Decodable is implemented by types that can decode themselves in encoding E.
// It is normally implemented on a pointer receiver.
type Decodable[E sliceencoding.Encoding] interface {
	DecodeSlice(d *Decoder[E]) error
}

// Encodable is implemented by types that can encode themselves in encoding E.
type Encodable[E sliceencoding.Encoding] interface {
	EncodeSlice(e *Encoder[E]) error
}

// DecodeFunc decodes one value of type T. Collections take one as an explicit
// parameter to decode their elements, so the same collection logic serves any
// element type.
type DecodeFunc[T any, E sliceencoding.Encoding] func(d *Decoder[E]) (T, error)

// EncodeFunc encodes one value of type T. It is the encode-side counterpart
// of DecodeFunc.
type EncodeFunc[T any, E sliceencoding.Encoding] func(e *Encoder[E], v T) error

// DecodeValue decodes a T through its Decodable implementation on *T. It
// adapts Decodable types to DecodeFunc:
//
//	points, err := codec.DecodeSequence(d, codec.DecodeValue[Point, *Point, slice2.Encoding])
func DecodeValue[T any, PT interface {
	*T
	Decodable[E]
}, E sliceencoding.Encoding](d *Decoder[E]) (T, error) {
	var v T
	err := PT(&v).DecodeSlice(d)
	return v, err
}

// EncodeValue encodes v through its Encodable implementation. It adapts
// Encodable types to EncodeFunc.
func EncodeValue[T Encodable[E], E sliceencoding.Encoding](e *Encoder[E], v T) error {
	return v.EncodeSlice(e)
}

// MustDecodeWith calls fn and panics if it fails. Use it only for input
// already known to be valid.
func MustDecodeWith[T any, E sliceencoding.Encoding](d *Decoder[E], fn DecodeFunc[T, E]) T {
	v, err := fn(d)
	if err != nil {
		panic(fmt.Errorf("codec: failed to decode: %w", err))
	}
	return v
}

// MustEncodeWith calls fn and panics if it fails.
func MustEncodeWith[T any, E sliceencoding.Encoding](e *Encoder[E], fn EncodeFunc[T, E], v T) {
	if err := fn(e, v); err != nil {
		panic(fmt.Errorf("codec: failed to encode: %w", err))
	}
}
