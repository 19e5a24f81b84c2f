package bitseq

import (
	"bytes"
	"math"
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{10, 2},
		{16, 2},
		{17, 3},
		{math.MaxInt, math.MaxInt/8 + 1},
	}
	for _, tt := range tests {
		if got := Size(tt.count); got != tt.want {
			t.Errorf("Size(%d): got %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestWriteThenRead(t *testing.T) {
	pattern := []bool{true, false, true, true, false, false, false, false, false, true}

	buf := make([]byte, Size(len(pattern)))
	if len(buf) != 2 {
		t.Fatalf("packed size: got %d, want 2", len(buf))
	}

	w := NewWriter(buf)
	for _, v := range pattern {
		w.WriteBit(v)
	}
	if !bytes.Equal(buf, []byte{0b00001101, 0b00000010}) {
		t.Errorf("packed: got %08b", buf)
	}

	r := NewReader(buf)
	for i, want := range pattern {
		if got := r.ReadBit(); got != want {
			t.Errorf("bit %d: got %v, want %v", i, got, want)
		}
	}
}

func TestWriterClearsBuffer(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	w := NewWriter(buf)
	w.WriteBit(false)
	w.WriteBit(true)
	if !bytes.Equal(buf, []byte{0b10, 0}) {
		t.Errorf("got %08b, want [00000010 00000000]", buf)
	}
}

func TestReadPastEndPanics(t *testing.T) {
	r := NewReader([]byte{0xFF})
	for i := 0; i < 8; i++ {
		r.ReadBit()
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic reading bit 8 of a 1-byte sequence")
		}
	}()
	r.ReadBit()
}

func TestWritePastEndPanics(t *testing.T) {
	w := NewWriter(nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic writing into an empty sequence")
		}
	}()
	w.WriteBit(true)
}
