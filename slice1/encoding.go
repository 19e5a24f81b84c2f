// Package slice1 provides the Slice1 encoding marker.
//
// The Slice1 size rule is not implemented: DecodeSize and EncodeSize always
// fail with an unsupported error, so only constructs that do not carry a size
// (bool, fixed-width numbers) can be encoded or decoded with it.
package slice1

import (
	"github.com/wippyai/slice-encoding/cursor"
	"github.com/wippyai/slice-encoding/errors"
)

// Encoding is the Slice1 encoding.
type Encoding struct{}

func (Encoding) String() string { return "Slice1" }

// DecodeSize fails with an unsupported error.
func (Encoding) DecodeSize(r *cursor.Reader) (int, error) {
	err := errors.Unsupported(errors.PhaseDecode, "Slice1 size decoding")
	err.Position = r.Position()
	return 0, err
}

// EncodeSize fails with an unsupported error.
func (Encoding) EncodeSize(int, *cursor.Writer) error {
	return errors.Unsupported(errors.PhaseEncode, "Slice1 size encoding")
}
