package varint

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/slice-encoding/cursor"
	"github.com/wippyai/slice-encoding/errors"
)

const (
	Int32Min  int32  = math.MinInt32
	Int32Max  int32  = math.MaxInt32
	Uint32Min uint32 = 0
	Uint32Max uint32 = math.MaxUint32
	Int62Min  int64  = math.MinInt64 >> 2
	Int62Max  int64  = math.MaxInt64 >> 2
	Uint62Min uint64 = 0
	Uint62Max uint64 = math.MaxUint64 >> 2
)

const tagMask = 0b11

// ReadInt62 reads a varint62.
func ReadInt62(r *cursor.Reader) (int64, error) {
	first, ok := r.PeekByte()
	if !ok {
		return 0, endOfBuffer(r)
	}

	var v int64
	switch first & tagMask {
	case 0b00:
		a, err := r.ReadArray1()
		if err != nil {
			return 0, err
		}
		v = int64(int8(a[0]))
	case 0b01:
		a, err := r.ReadArray2()
		if err != nil {
			return 0, err
		}
		v = int64(int16(binary.LittleEndian.Uint16(a[:])))
	case 0b10:
		a, err := r.ReadArray4()
		if err != nil {
			return 0, err
		}
		v = int64(int32(binary.LittleEndian.Uint32(a[:])))
	default:
		a, err := r.ReadArray8()
		if err != nil {
			return 0, err
		}
		v = int64(binary.LittleEndian.Uint64(a[:]))
	}
	return v >> 2, nil
}

// ReadUint62 reads a varuint62.
func ReadUint62(r *cursor.Reader) (uint64, error) {
	first, ok := r.PeekByte()
	if !ok {
		return 0, endOfBuffer(r)
	}

	var v uint64
	switch first & tagMask {
	case 0b00:
		a, err := r.ReadArray1()
		if err != nil {
			return 0, err
		}
		v = uint64(a[0])
	case 0b01:
		a, err := r.ReadArray2()
		if err != nil {
			return 0, err
		}
		v = uint64(binary.LittleEndian.Uint16(a[:]))
	case 0b10:
		a, err := r.ReadArray4()
		if err != nil {
			return 0, err
		}
		v = uint64(binary.LittleEndian.Uint32(a[:]))
	default:
		a, err := r.ReadArray8()
		if err != nil {
			return 0, err
		}
		v = binary.LittleEndian.Uint64(a[:])
	}
	return v >> 2, nil
}

// ReadInt32 reads a varint32.
func ReadInt32(r *cursor.Reader) (int32, error) {
	v, err := ReadInt62(r)
	if err != nil {
		return 0, err
	}
	if v < int64(Int32Min) || v > int64(Int32Max) {
		return 0, errors.OutOfRange(errors.PhaseDecode, "varint32", v, Int32Min, Int32Max)
	}
	return int32(v), nil
}

// ReadUint32 reads a varuint32.
func ReadUint32(r *cursor.Reader) (uint32, error) {
	v, err := ReadUint62(r)
	if err != nil {
		return 0, err
	}
	if v > uint64(Uint32Max) {
		return 0, errors.OutOfRange(errors.PhaseDecode, "varuint32", v, Uint32Min, Uint32Max)
	}
	return uint32(v), nil
}

// WriteInt62 writes v as a varint62.
func WriteInt62(w *cursor.Writer, v int64) error {
	if v < Int62Min || v > Int62Max {
		return errors.OutOfRange(errors.PhaseEncode, "varint62", v, Int62Min, Int62Max)
	}
	shifted := v << 2
	tag := signedTag(shifted)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(shifted)|uint64(tag))
	return w.WriteBytes(buf[:1<<tag])
}

// WriteUint62 writes v as a varuint62.
func WriteUint62(w *cursor.Writer, v uint64) error {
	if v > Uint62Max {
		return errors.OutOfRange(errors.PhaseEncode, "varuint62", v, Uint62Min, Uint62Max)
	}
	shifted := v << 2
	tag := unsignedTag(shifted)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], shifted|uint64(tag))
	return w.WriteBytes(buf[:1<<tag])
}

// WriteInt32 writes v as a varint32.
func WriteInt32(w *cursor.Writer, v int32) error {
	return WriteInt62(w, int64(v))
}

// WriteUint32 writes v as a varuint32.
func WriteUint32(w *cursor.Writer, v uint32) error {
	return WriteUint62(w, uint64(v))
}

// SizeInt62 returns the number of bytes WriteInt62 uses for v.
// The result for values outside the varint62 range is meaningless.
func SizeInt62(v int64) int {
	return 1 << signedTag(v<<2)
}

// SizeUint62 returns the number of bytes WriteUint62 uses for v.
// The result for values outside the varuint62 range is meaningless.
func SizeUint62(v uint64) int {
	return 1 << unsignedTag(v<<2)
}

// signedTag returns the smallest size tag whose two's-complement width holds
// the already shifted value.
func signedTag(shifted int64) byte {
	switch {
	case shifted >= math.MinInt8 && shifted <= math.MaxInt8:
		return 0b00
	case shifted >= math.MinInt16 && shifted <= math.MaxInt16:
		return 0b01
	case shifted >= math.MinInt32 && shifted <= math.MaxInt32:
		return 0b10
	default:
		return 0b11
	}
}

func unsignedTag(shifted uint64) byte {
	switch {
	case shifted <= math.MaxUint8:
		return 0b00
	case shifted <= math.MaxUint16:
		return 0b01
	case shifted <= math.MaxUint32:
		return 0b10
	default:
		return 0b11
	}
}

func endOfBuffer(r *cursor.Reader) *errors.Error {
	err := errors.EndOfBuffer(errors.PhaseDecode, 1, 0)
	err.Position = r.Position()
	return err
}
