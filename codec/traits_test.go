package codec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/slice-encoding/codec"
	slerrors "github.com/wippyai/slice-encoding/errors"
	"github.com/wippyai/slice-encoding/slice2"
)

type point struct {
	X, Y  int32
	Label string
}

func (p *point) DecodeSlice(d *codec.Decoder[slice2.Encoding]) error {
	var err error
	if p.X, err = slice2.DecodeVarInt32(d); err != nil {
		return err
	}
	if p.Y, err = slice2.DecodeVarInt32(d); err != nil {
		return err
	}
	p.Label, err = codec.DecodeString(d)
	return err
}

func (p point) EncodeSlice(e *codec.Encoder[slice2.Encoding]) error {
	if err := slice2.EncodeVarInt32(e, p.X); err != nil {
		return err
	}
	if err := slice2.EncodeVarInt32(e, p.Y); err != nil {
		return err
	}
	return codec.EncodeString(e, p.Label)
}

func TestDecodableEncodable(t *testing.T) {
	in := point{X: -3, Y: 40000, Label: "origin"}

	e := codec.NewEncoder[slice2.Encoding]()
	if err := e.Encode(in); err != nil {
		t.Fatal(err)
	}

	var got point
	d := codec.NewDecoder[slice2.Encoding](e.Bytes())
	if err := d.Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("decoded point mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodableSequence(t *testing.T) {
	in := []point{{X: 1, Y: 2, Label: "a"}, {X: -1, Y: -2, Label: "b"}}

	e := codec.NewEncoder[slice2.Encoding]()
	if err := codec.EncodeSequence(e, in, codec.EncodeValue[point, slice2.Encoding]); err != nil {
		t.Fatal(err)
	}

	d := codec.NewDecoder[slice2.Encoding](e.Bytes())
	got, err := codec.DecodeSequence(d, codec.DecodeValue[point, *point, slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("decoded points mismatch (-want +got):\n%s", diff)
	}
}

func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
	}()
	f()
	return nil
}

func TestMustDecode(t *testing.T) {
	d := codec.NewDecoder[slice2.Encoding]([]byte{0x04})
	err := recoverError(t, func() {
		var p point
		d.MustDecode(&p)
	})
	if !errors.Is(err, slerrors.ErrEndOfBuffer) {
		t.Errorf("panic error = %v, want end_of_buffer", err)
	}

	d = codec.NewDecoder[slice2.Encoding]([]byte{2})
	err = recoverError(t, func() {
		codec.MustDecodeWith(d, codec.DecodeBool[slice2.Encoding])
	})
	if !errors.Is(err, slerrors.ErrIllegalValue) {
		t.Errorf("panic error = %v, want illegal_value", err)
	}
}

func TestMustEncode(t *testing.T) {
	e := codec.NewEncoder[slice2.Encoding](codec.WithFixedBuffer(make([]byte, 0, 2)))
	err := recoverError(t, func() {
		e.MustEncode(point{X: 1, Y: 2, Label: "too long"})
	})
	if !errors.Is(err, slerrors.ErrCapacityExceeded) {
		t.Errorf("panic error = %v, want capacity_exceeded", err)
	}

	e = codec.NewEncoder[slice2.Encoding]()
	err = recoverError(t, func() {
		codec.MustEncodeWith(e, codec.EncodeString[slice2.Encoding], "\xff")
	})
	var se *slerrors.Error
	if !errors.As(err, &se) || se.Kind != slerrors.KindInvalidData {
		t.Errorf("panic error = %v, want invalid_data", err)
	}
}

func TestMustRoundTrip(t *testing.T) {
	e := codec.NewEncoder[slice2.Encoding]()
	e.MustEncode(point{X: 5, Label: "p"})
	codec.MustEncodeWith(e, slice2.EncodeVarUint62, 1<<40)

	d := codec.NewDecoder[slice2.Encoding](e.Bytes())
	var p point
	d.MustDecode(&p)
	if p.X != 5 || p.Label != "p" {
		t.Errorf("decoded %+v", p)
	}
	if v := codec.MustDecodeWith(d, slice2.DecodeVarUint62); v != 1<<40 {
		t.Errorf("decoded %d, want %d", v, uint64(1)<<40)
	}
}
