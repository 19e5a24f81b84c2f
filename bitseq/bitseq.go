// Package bitseq packs and unpacks the bit sequences that record which
// elements of an optional-element collection are present.
//
// Bit i of a sequence lives in byte i/8 under the mask 1<<(i%8).
package bitseq

// Size returns the number of bytes needed to hold count bits.
func Size(count int) int {
	size := count / 8
	if count%8 != 0 {
		size++
	}
	return size
}

// Reader reads bits from a byte slice in order.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBit returns the next bit. Callers must size buf for every bit they
// read; reading past 8*len(buf) bits panics.
func (r *Reader) ReadBit() bool {
	if r.pos >= len(r.buf)*8 {
		panic("bitseq: read past end of bit sequence")
	}
	set := r.buf[r.pos/8]&(1<<(r.pos%8)) != 0
	r.pos++
	return set
}

// Writer writes bits into a byte slice in order.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter zeroes buf and creates a Writer over it. Since every bit starts
// cleared, WriteBit only has to touch the bits that are set.
func NewWriter(buf []byte) *Writer {
	clear(buf)
	return &Writer{buf: buf}
}

// WriteBit writes v as the next bit. Writing past 8*len(buf) bits panics.
func (w *Writer) WriteBit(v bool) {
	if w.pos >= len(w.buf)*8 {
		panic("bitseq: write past end of bit sequence")
	}
	if v {
		w.buf[w.pos/8] |= 1 << (w.pos % 8)
	}
	w.pos++
}
