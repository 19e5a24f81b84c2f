package codec

import (
	"unsafe"

	sliceencoding "github.com/wippyai/slice-encoding"
	"github.com/wippyai/slice-encoding/bitseq"
)

// sizeOf returns the in-memory size of a T, used to charge preallocations
// against the decoder's allocation limit.
func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// DecodeSequence decodes a sequence<T>:
//
//	[size][element]*size
//
// Each element is decoded in order with fn.
func DecodeSequence[T any, E sliceencoding.Encoding](d *Decoder[E], fn DecodeFunc[T, E]) ([]T, error) {
	n, err := d.DecodeSize()
	if err != nil {
		return nil, err
	}
	if err := d.allocateElements(n, sizeOf[T]()); err != nil {
		return nil, err
	}

	s := make([]T, 0, n)
	for range n {
		v, err := fn(d)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	return s, nil
}

// EncodeSequence encodes s as a sequence<T>, writing each element with fn.
func EncodeSequence[T any, E sliceencoding.Encoding](e *Encoder[E], s []T, fn EncodeFunc[T, E]) error {
	if err := e.EncodeSize(len(s)); err != nil {
		return err
	}
	for _, v := range s {
		if err := fn(e, v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeOptionalSequence decodes a sequence<T?>:
//
//	[size][bit sequence of ceil(size/8) bytes][present element]*
//
// Absent elements are returned as nil.
func DecodeOptionalSequence[T any, E sliceencoding.Encoding](d *Decoder[E], fn DecodeFunc[T, E]) ([]*T, error) {
	n, err := d.DecodeSize()
	if err != nil {
		return nil, err
	}
	bits, err := d.ReadBytesExact(bitseq.Size(n))
	if err != nil {
		return nil, err
	}
	if err := d.allocateElements(n, sizeOf[*T]()); err != nil {
		return nil, err
	}

	s := make([]*T, 0, n)
	present := bitseq.NewReader(bits)
	for range n {
		if !present.ReadBit() {
			s = append(s, nil)
			continue
		}
		if err := d.IncreaseAllocationTotal(sizeOf[T]()); err != nil {
			return nil, err
		}
		v, err := fn(d)
		if err != nil {
			return nil, err
		}
		s = append(s, &v)
	}
	return s, nil
}

// EncodeOptionalSequence encodes s as a sequence<T?>, writing a bit per
// element (set for non-nil) followed by the non-nil elements encoded with fn.
func EncodeOptionalSequence[T any, E sliceencoding.Encoding](e *Encoder[E], s []*T, fn EncodeFunc[T, E]) error {
	if err := e.EncodeSize(len(s)); err != nil {
		return err
	}
	span, err := e.Reserve(bitseq.Size(len(s)))
	if err != nil {
		return err
	}

	// The bit sequence is filled before any element is written, since a
	// growable buffer may move once writing resumes.
	present := bitseq.NewWriter(span.Bytes())
	for _, v := range s {
		present.WriteBit(v != nil)
	}

	for _, v := range s {
		if v == nil {
			continue
		}
		if err := fn(e, *v); err != nil {
			return err
		}
	}
	return nil
}
