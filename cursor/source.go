package cursor

import "math"

// Unbounded is reported by Remaining and Available when the length of a
// source or destination is not known in advance.
const Unbounded = math.MaxInt

// Source supplies the bytes a Reader consumes.
type Source interface {
	// Bytes returns the bytes currently available.
	Bytes() []byte
	// Bounded reports whether Bytes is the complete input. Sources that keep
	// filling over time return false.
	Bounded() bool
}

// SliceSource is a Source over a fully materialized buffer.
type SliceSource []byte

func (s SliceSource) Bytes() []byte { return s }

func (s SliceSource) Bounded() bool { return true }
