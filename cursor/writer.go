package cursor

import (
	"github.com/wippyai/slice-encoding/errors"
)

// Writer appends encoded bytes to a destination buffer.
type Writer struct {
	buf   []byte
	fixed bool
}

// NewWriter creates a growable Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize creates a growable Writer with room for size bytes before
// its first reallocation.
func NewWriterSize(size int) *Writer {
	if size < 0 {
		size = 0
	}
	return &Writer{buf: make([]byte, 0, size)}
}

// NewFixedWriter creates a Writer that fills dst[:cap(dst)] and never grows.
// Writes that do not fit fail with a capacity_exceeded error.
func NewFixedWriter(dst []byte) *Writer {
	return &Writer{buf: dst[:0], fixed: true}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Available returns how many more bytes fit, or Unbounded for growable writers.
func (w *Writer) Available() int {
	if !w.fixed {
		return Unbounded
	}
	return cap(w.buf) - len(w.buf)
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(b byte) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf = append(w.buf, b)
	return nil
}

// WriteBytes writes p in full, or nothing at all.
func (w *Writer) WriteBytes(p []byte) error {
	if err := w.ensure(len(p)); err != nil {
		return err
	}
	w.buf = append(w.buf, p...)
	return nil
}

// WriteString writes s in full, or nothing at all.
func (w *Writer) WriteString(s string) error {
	if err := w.ensure(len(s)); err != nil {
		return err
	}
	w.buf = append(w.buf, s...)
	return nil
}

// Span is a region of a Writer's output handed out by Reserve.
type Span struct {
	w   *Writer
	off int
	n   int
}

// Bytes returns the reserved region. The slice's capacity ends where the
// region ends, so appending to it never touches bytes written after it.
// It must be re-fetched after further writes, since a growable Writer may
// move its buffer.
func (s Span) Bytes() []byte {
	end := s.off + s.n
	return s.w.buf[s.off:end:end]
}

// Len returns the size of the reserved region.
func (s Span) Len() int {
	return s.n
}

// Offset returns the region's position in the Writer's output.
func (s Span) Offset() int {
	return s.off
}

// Reserve appends n zero bytes and returns their region so a header can be
// filled in after the content that follows it has been written.
func (w *Writer) Reserve(n int) (Span, error) {
	if n < 0 {
		return Span{}, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Value(n).
			Detail("negative reservation %d", n).
			Build()
	}
	if err := w.ensure(n); err != nil {
		return Span{}, err
	}
	off := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return Span{w: w, off: off, n: n}, nil
}

func (w *Writer) ensure(n int) error {
	if w.fixed && n > cap(w.buf)-len(w.buf) {
		return errors.CapacityExceeded(n, cap(w.buf)-len(w.buf))
	}
	return nil
}
