package codec

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	sliceencoding "github.com/wippyai/slice-encoding"
	"github.com/wippyai/slice-encoding/cursor"
	"github.com/wippyai/slice-encoding/errors"
	"github.com/wippyai/slice-encoding/internal/arith"
)

// NoLimit is the allocation limit of a Decoder whose limit is disabled.
// RemainingAllocationBudget reports it unchanged no matter how much has been
// allocated.
const NoLimit = math.MaxInt

// Decoder reads Slice-encoded values in encoding E from a borrowed buffer.
//
// It embeds a cursor.Reader, so the byte-level read methods are available
// directly, and adds the size rule of E and an allocation governor.
type Decoder[E sliceencoding.Encoding] struct {
	*cursor.Reader

	encoding E

	// allocated is the running total of heap bytes requested through
	// IncreaseAllocationTotal. It never exceeds limit.
	allocated int
	limit     int
}

// NewDecoder creates a Decoder over buf.
func NewDecoder[E sliceencoding.Encoding](buf []byte, opts ...DecoderOption) *Decoder[E] {
	return newDecoder[E](cursor.NewReader(buf), opts)
}

// NewSourceDecoder creates a Decoder over the bytes src currently holds.
func NewSourceDecoder[E sliceencoding.Encoding](src cursor.Source, opts ...DecoderOption) *Decoder[E] {
	return newDecoder[E](cursor.NewSourceReader(src), opts)
}

func newDecoder[E sliceencoding.Encoding](r *cursor.Reader, opts []DecoderOption) *Decoder[E] {
	var cfg decoderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Decoder[E]{
		Reader: r,
		limit:  cfg.limit(r),
	}
	if cfg.mode == limitNone {
		Logger().Warn("decoder allocation limit disabled",
			zap.Stringer("encoding", d.encoding))
	}
	return d
}

// Encoding returns the encoding this Decoder reads.
func (d *Decoder[E]) Encoding() E {
	return d.encoding
}

// DecodeSize reads a size using the rule of encoding E.
func (d *Decoder[E]) DecodeSize() (int, error) {
	return d.encoding.DecodeSize(d.Reader)
}

// AllocationLimit returns the maximum number of heap bytes this Decoder may
// allocate, or NoLimit.
func (d *Decoder[E]) AllocationLimit() int {
	return d.limit
}

// RemainingAllocationBudget returns how many more heap bytes this Decoder may
// allocate. It is NoLimit when the limit is disabled.
func (d *Decoder[E]) RemainingAllocationBudget() int {
	if d.limit == NoLimit {
		return NoLimit
	}
	return d.limit - d.allocated
}

// IncreaseAllocationTotal must be called before any decode step allocates
// heap memory sized from the input. It does not allocate anything itself; it
// adds size to the running total, or fails with a heap_allocation_limit error
// and leaves the total unchanged if that would pass the limit.
func (d *Decoder[E]) IncreaseAllocationTotal(size int) error {
	if size < 0 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(size).
			Detail("negative allocation size %d", size).
			Build()
	}

	total := arith.SaturatingAdd(d.allocated, size)
	if total > d.limit {
		Logger().Debug("allocation limit reached",
			zap.Int("limit", d.limit),
			zap.Int("current", d.allocated),
			zap.Int("requested", size),
			zap.Int("position", d.Position()))
		err := errors.AllocationLimit(d.limit, d.allocated, size)
		err.Position = d.Position()
		return err
	}
	d.allocated = total
	return nil
}

// allocateElements charges count elements of elemSize bytes each.
func (d *Decoder[E]) allocateElements(count, elemSize int) error {
	return d.IncreaseAllocationTotal(arith.SaturatingMul(count, elemSize))
}

// Decode decodes v from the Decoder.
func (d *Decoder[E]) Decode(v Decodable[E]) error {
	return v.DecodeSlice(d)
}

// MustDecode is like Decode but panics on failure. Use it only for input
// already known to be valid, such as bytes this process just encoded.
func (d *Decoder[E]) MustDecode(v Decodable[E]) {
	if err := v.DecodeSlice(d); err != nil {
		panic(fmt.Errorf("codec: failed to decode: %w", err))
	}
}
