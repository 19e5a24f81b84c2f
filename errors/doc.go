// Package errors provides structured error types for the Slice codec.
//
// Errors are categorized by Phase (decode or encode) and Kind (error
// category). The Error type carries the offending value, the type name being
// decoded or encoded, and optional range or allocation details.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindIllegalValue).
//		Type("bool").
//		Value(2).
//		Detail("bools can only have a numeric value of 0 or 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseEncode, "varint62", v, min, max)
//	err := errors.EndOfBuffer(errors.PhaseDecode, 8, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so the exported sentinels can be used as
// targets:
//
//	if errors.Is(err, errors.ErrEndOfBuffer) { ... }
package errors
