package cursor

import (
	"github.com/wippyai/slice-encoding/errors"
)

// Reader is a position-tracking, read-only view over a byte buffer.
type Reader struct {
	buf     []byte
	pos     int
	bounded bool
}

// NewReader creates a Reader over buf. The buffer is borrowed, not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, bounded: true}
}

// NewSourceReader creates a Reader over the bytes src currently holds.
func NewSourceReader(src Source) *Reader {
	return &Reader{buf: src.Bytes(), bounded: src.Bounded()}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes, or Unbounded if the reader's
// source may keep providing bytes.
func (r *Reader) Remaining() int {
	if !r.bounded {
		return Unbounded
	}
	return len(r.buf) - r.pos
}

// PeekByte returns the next byte without consuming it.
// It reports false at end-of-buffer.
func (r *Reader) PeekByte() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	return r.buf[r.pos], true
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, r.endOfBuffer(1)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// PeekBytes returns up to n unread bytes without consuming them.
// Fewer bytes are returned near the end of the buffer, none at the end.
func (r *Reader) PeekBytes(n int) []byte {
	if n <= 0 {
		return r.buf[r.pos:r.pos]
	}
	end := len(r.buf)
	if n < end-r.pos {
		end = r.pos + n
	}
	return r.buf[r.pos:end:end]
}

// ReadBytesExact consumes exactly n bytes and returns them without copying.
// If fewer than n bytes remain, nothing is consumed.
func (r *Reader) ReadBytesExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Position(r.pos).
			Value(n).
			Detail("negative read length %d", n).
			Build()
	}
	if n > len(r.buf)-r.pos {
		return nil, r.endOfBuffer(n)
	}
	end := r.pos + n
	p := r.buf[r.pos:end:end]
	r.pos = end
	return p, nil
}

// Split consumes the next n bytes and returns them as a separate Reader.
// The returned Reader shares the underlying buffer.
func (r *Reader) Split(n int) (*Reader, error) {
	p, err := r.ReadBytesExact(n)
	if err != nil {
		return nil, err
	}
	return NewReader(p), nil
}

// ReadArray1 consumes exactly one byte as an array.
func (r *Reader) ReadArray1() ([1]byte, error) {
	var a [1]byte
	if len(r.buf)-r.pos < len(a) {
		return a, r.endOfBuffer(len(a))
	}
	a[0] = r.buf[r.pos]
	r.pos++
	return a, nil
}

// ReadArray2 consumes exactly two bytes as an array.
func (r *Reader) ReadArray2() ([2]byte, error) {
	var a [2]byte
	if len(r.buf)-r.pos < len(a) {
		return a, r.endOfBuffer(len(a))
	}
	r.pos += copy(a[:], r.buf[r.pos:])
	return a, nil
}

// ReadArray4 consumes exactly four bytes as an array.
func (r *Reader) ReadArray4() ([4]byte, error) {
	var a [4]byte
	if len(r.buf)-r.pos < len(a) {
		return a, r.endOfBuffer(len(a))
	}
	r.pos += copy(a[:], r.buf[r.pos:])
	return a, nil
}

// ReadArray8 consumes exactly eight bytes as an array.
func (r *Reader) ReadArray8() ([8]byte, error) {
	var a [8]byte
	if len(r.buf)-r.pos < len(a) {
		return a, r.endOfBuffer(len(a))
	}
	r.pos += copy(a[:], r.buf[r.pos:])
	return a, nil
}

func (r *Reader) endOfBuffer(requested int) *errors.Error {
	err := errors.EndOfBuffer(errors.PhaseDecode, requested, len(r.buf)-r.pos)
	err.Position = r.pos
	return err
}
