package codec

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/wippyai/slice-encoding/cursor"
)

// Fixed is the set of fixed-width numeric types. Integers are written in
// two's complement and floats in IEEE 754 form, both little endian, on
// exactly unsafe.Sizeof(T) bytes.
type Fixed interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// ReadFixed reads a fixed-width little-endian T.
func ReadFixed[T Fixed](r *cursor.Reader) (T, error) {
	var v T
	bits, err := readLittleEndian(r, int(unsafe.Sizeof(v)))
	if err != nil {
		return v, err
	}
	return fromBits[T](bits), nil
}

// WriteFixed writes v as a fixed-width little-endian value.
func WriteFixed[T Fixed](w *cursor.Writer, v T) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], toBits(v))
	return w.WriteBytes(buf[:unsafe.Sizeof(v)])
}

func readLittleEndian(r *cursor.Reader, size int) (uint64, error) {
	switch size {
	case 1:
		a, err := r.ReadArray1()
		return uint64(a[0]), err
	case 2:
		a, err := r.ReadArray2()
		return uint64(binary.LittleEndian.Uint16(a[:])), err
	case 4:
		a, err := r.ReadArray4()
		return uint64(binary.LittleEndian.Uint32(a[:])), err
	default:
		a, err := r.ReadArray8()
		return binary.LittleEndian.Uint64(a[:]), err
	}
}

// fromBits converts the raw little-endian bits of a T back into a T.
// Integer conversions truncate, which restores two's-complement values.
func fromBits[T Fixed](bits uint64) T {
	var v T
	switch any(v).(type) {
	case float32:
		return T(math.Float32frombits(uint32(bits)))
	case float64:
		return T(math.Float64frombits(bits))
	}
	return T(bits)
}

func toBits[T Fixed](v T) uint64 {
	switch f := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(f))
	case float64:
		return math.Float64bits(f)
	}
	// Signed values are sign-extended, so the low bytes hold their
	// two's-complement form.
	return uint64(v)
}
