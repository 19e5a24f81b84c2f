package codec

import (
	"github.com/wippyai/slice-encoding/cursor"
	"github.com/wippyai/slice-encoding/internal/arith"
)

const (
	// DefaultAllocationFloor is the smallest allocation limit a Decoder gets
	// when no limit option is given. Small inputs may legitimately expand a
	// lot in memory: a nil optional element is one bit on the wire and a
	// pointer once decoded.
	DefaultAllocationFloor = 16 << 20

	// DefaultAllocationFactor scales the default limit with the input: a
	// Decoder created without a limit option may allocate the larger of
	// DefaultAllocationFloor and this many times the size of its input.
	DefaultAllocationFactor = 8
)

// limitMode selects how a decoder's allocation limit is derived.
type limitMode int

const (
	limitDefault limitMode = iota
	limitProportional
	limitAbsolute
	limitNone
)

type decoderConfig struct {
	mode  limitMode
	value int
}

// DecoderOption configures a Decoder.
type DecoderOption func(*decoderConfig)

// WithAllocationLimit caps the heap memory a Decoder may allocate at limit
// bytes. Negative limits are treated as zero.
func WithAllocationLimit(limit int) DecoderOption {
	return func(c *decoderConfig) {
		c.mode = limitAbsolute
		c.value = max(limit, 0)
	}
}

// WithProportionalAllocationLimit caps the heap memory a Decoder may allocate
// at factor times the number of bytes remaining in its input when the Decoder
// is created. Negative factors are treated as zero.
//
// For an unbounded source the product saturates, which disables the limit.
func WithProportionalAllocationLimit(factor int) DecoderOption {
	return func(c *decoderConfig) {
		c.mode = limitProportional
		c.value = max(factor, 0)
	}
}

// WithNoAllocationLimit disables the allocation limit. Malformed or malicious
// payloads can then make the Decoder allocate arbitrary amounts of memory.
func WithNoAllocationLimit() DecoderOption {
	return func(c *decoderConfig) {
		c.mode = limitNone
	}
}

func (c decoderConfig) limit(r *cursor.Reader) int {
	switch c.mode {
	case limitAbsolute:
		return c.value
	case limitNone:
		return NoLimit
	case limitProportional:
		return arith.SaturatingMul(c.value, r.Remaining())
	default:
		return max(DefaultAllocationFloor, arith.SaturatingMul(DefaultAllocationFactor, r.Remaining()))
	}
}

type encoderConfig struct {
	fixed    []byte
	hasFixed bool
	sizeHint int
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderConfig)

// WithCapacityHint preallocates room for size bytes of output.
func WithCapacityHint(size int) EncoderOption {
	return func(c *encoderConfig) {
		c.sizeHint = size
	}
}

// WithFixedBuffer makes the Encoder write into dst[:cap(dst)] instead of a
// growable buffer. Writes past cap(dst) fail with a capacity_exceeded error.
func WithFixedBuffer(dst []byte) EncoderOption {
	return func(c *encoderConfig) {
		c.fixed = dst
		c.hasFixed = true
	}
}

func (c encoderConfig) writer() *cursor.Writer {
	if c.hasFixed {
		return cursor.NewFixedWriter(c.fixed)
	}
	return cursor.NewWriterSize(c.sizeHint)
}
