package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/slice-encoding/codec"
	slerrors "github.com/wippyai/slice-encoding/errors"
	"github.com/wippyai/slice-encoding/slice2"
)

func TestSortedMap(t *testing.T) {
	in := map[string]int32{"b": 2, "a": 1}

	e := codec.NewEncoder[slice2.Encoding]()
	err := codec.EncodeSortedMap(e, in, codec.EncodeString[slice2.Encoding], codec.EncodeInt32[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x08,
		0x04, 'a', 0x01, 0x00, 0x00, 0x00,
		0x04, 'b', 0x02, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("encoded %x, want %x", e.Bytes(), want)
	}

	d := codec.NewDecoder[slice2.Encoding](want)
	got, err := codec.DecodeMap(d, codec.DecodeString[slice2.Encoding], codec.DecodeInt32[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("decoded map mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRoundTrip(t *testing.T) {
	in := map[uint8][]string{
		1: {"one"},
		2: {},
		3: {"three", "drei"},
	}
	encodeValue := func(e *enc, s []string) error {
		return codec.EncodeSequence(e, s, codec.EncodeString[slice2.Encoding])
	}
	decodeValue := func(d *dec) ([]string, error) {
		return codec.DecodeSequence(d, codec.DecodeString[slice2.Encoding])
	}

	e := codec.NewEncoder[slice2.Encoding]()
	if err := codec.EncodeMap(e, in, codec.EncodeUint8[slice2.Encoding], encodeValue); err != nil {
		t.Fatal(err)
	}

	d := codec.NewDecoder[slice2.Encoding](e.Bytes())
	got, err := codec.DecodeMap(d, codec.DecodeUint8[slice2.Encoding], decodeValue)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("decoded map mismatch (-want +got):\n%s", diff)
	}
	if d.Remaining() != 0 {
		t.Errorf("%d bytes left", d.Remaining())
	}
}

func TestDuplicateKeys(t *testing.T) {
	wire := []byte{0x08, 1, 10, 1, 20}

	d := codec.NewDecoder[slice2.Encoding](wire)
	m, err := codec.DecodeMap(d, codec.DecodeUint8[slice2.Encoding], codec.DecodeUint8[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[uint8]uint8{1: 20}, m); diff != "" {
		t.Errorf("last entry should win (-want +got):\n%s", diff)
	}

	d = codec.NewDecoder[slice2.Encoding](wire)
	entries, err := codec.DecodeEntries(d, codec.DecodeUint8[slice2.Encoding], codec.DecodeUint8[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	want := []codec.Entry[uint8, uint8]{{Key: 1, Value: 10}, {Key: 1, Value: 20}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntriesKeepOrder(t *testing.T) {
	in := []codec.Entry[string, bool]{
		{Key: "z", Value: true},
		{Key: "a", Value: false},
	}

	e := codec.NewEncoder[slice2.Encoding]()
	if err := codec.EncodeEntries(e, in, codec.EncodeString[slice2.Encoding], codec.EncodeBool[slice2.Encoding]); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x08, 0x04, 'z', 0x01, 0x04, 'a', 0x00}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("encoded %x, want %x", e.Bytes(), want)
	}

	d := codec.NewDecoder[slice2.Encoding](want)
	got, err := codec.DecodeEntries(d, codec.DecodeString[slice2.Encoding], codec.DecodeBool[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionalMap(t *testing.T) {
	in := map[uint8]*string{1: ptr("x"), 2: nil}

	e := codec.NewEncoder[slice2.Encoding]()
	err := codec.EncodeSortedOptionalMap(e, in, codec.EncodeUint8[slice2.Encoding], codec.EncodeString[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x08, 0x01, 0x01, 0x04, 'x', 0x00, 0x02}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("encoded %x, want %x", e.Bytes(), want)
	}

	d := codec.NewDecoder[slice2.Encoding](want)
	got, err := codec.DecodeOptionalMap(d, codec.DecodeUint8[slice2.Encoding], codec.DecodeString[slice2.Encoding])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("decoded map mismatch (-want +got):\n%s", diff)
	}

	e = codec.NewEncoder[slice2.Encoding]()
	if err := codec.EncodeOptionalMap(e, in, codec.EncodeUint8[slice2.Encoding], codec.EncodeString[slice2.Encoding]); err != nil {
		t.Fatal(err)
	}
	if e.Len() != len(want) {
		t.Errorf("unsorted encoding is %d bytes, want %d", e.Len(), len(want))
	}
}

func TestMapErrors(t *testing.T) {
	t.Run("allocation limit", func(t *testing.T) {
		d := codec.NewDecoder[slice2.Encoding]([]byte{0xA1, 0x0F},
			codec.WithProportionalAllocationLimit(codec.DefaultAllocationFactor))
		_, err := codec.DecodeMap(d, codec.DecodeInt64[slice2.Encoding], codec.DecodeInt64[slice2.Encoding])
		if !errors.Is(err, slerrors.ErrAllocationLimit) {
			t.Fatalf("DecodeMap = %v, want heap_allocation_limit", err)
		}
	})

	t.Run("illegal presence flag", func(t *testing.T) {
		d := codec.NewDecoder[slice2.Encoding]([]byte{0x04, 0x02, 0x01})
		_, err := codec.DecodeOptionalMap(d, codec.DecodeUint8[slice2.Encoding], codec.DecodeUint8[slice2.Encoding])
		if !errors.Is(err, slerrors.ErrIllegalValue) {
			t.Fatalf("DecodeOptionalMap = %v, want illegal_value", err)
		}
	})

	t.Run("truncated value", func(t *testing.T) {
		d := codec.NewDecoder[slice2.Encoding]([]byte{0x04, 0x01})
		_, err := codec.DecodeMap(d, codec.DecodeUint8[slice2.Encoding], codec.DecodeUint8[slice2.Encoding])
		if !errors.Is(err, slerrors.ErrEndOfBuffer) {
			t.Fatalf("DecodeMap = %v, want end_of_buffer", err)
		}
	})
}

func TestEntriesWithOptionalValues(t *testing.T) {
	in := []codec.Entry[uint8, *string]{
		{Key: 2, Value: ptr("b")},
		{Key: 1, Value: nil},
		{Key: 2, Value: ptr("c")},
	}
	encodeEntry := codec.OptionalEntryEncoder(codec.EncodeUint8[slice2.Encoding], codec.EncodeString[slice2.Encoding])
	decodeEntry := codec.OptionalEntryDecoder(codec.DecodeUint8[slice2.Encoding], codec.DecodeString[slice2.Encoding])

	e := codec.NewEncoder[slice2.Encoding]()
	if err := codec.EncodeEntriesWith(e, in, encodeEntry); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x0C,
		0x01, 0x02, 0x04, 'b',
		0x00, 0x01,
		0x01, 0x02, 0x04, 'c',
	}
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("encoded %x, want %x", e.Bytes(), want)
	}

	d := codec.NewDecoder[slice2.Encoding](want)
	got, err := codec.DecodeEntriesWith(d, decodeEntry)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}
