package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // bytes to Go
	PhaseEncode Phase = "encode" // Go to bytes
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData      Kind = "invalid_data"
	KindIllegalValue     Kind = "illegal_value"
	KindOutOfRange       Kind = "out_of_range"
	KindAllocationLimit  Kind = "heap_allocation_limit"
	KindEndOfBuffer      Kind = "end_of_buffer"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindUnsupported      Kind = "unsupported"
)

// Sentinels for errors.Is. They match any error with the same Phase and Kind.
// A sentinel without a Phase, like ErrUnsupported, matches its Kind in every
// phase.
var (
	ErrInvalidData      = &Error{Phase: PhaseDecode, Kind: KindInvalidData}
	ErrIllegalValue     = &Error{Phase: PhaseDecode, Kind: KindIllegalValue}
	ErrOutOfRange       = &Error{Phase: PhaseDecode, Kind: KindOutOfRange}
	ErrAllocationLimit  = &Error{Phase: PhaseDecode, Kind: KindAllocationLimit}
	ErrEndOfBuffer      = &Error{Phase: PhaseDecode, Kind: KindEndOfBuffer}
	ErrEncodeOutOfRange = &Error{Phase: PhaseEncode, Kind: KindOutOfRange}
	ErrCapacityExceeded = &Error{Phase: PhaseEncode, Kind: KindCapacityExceeded}
	ErrUnsupported      = &Error{Kind: KindUnsupported}
)

// Range is the inclusive range a value was checked against.
// Bounds are kept as any so both int64 and uint64 limits survive intact.
type Range struct {
	Min any
	Max any
}

// Allocation describes a rejected heap allocation request.
type Allocation struct {
	Limit     int
	Current   int
	Requested int
}

// Error is the structured error type used throughout the codec
type Error struct {
	Value      any
	Cause      error
	Range      *Range
	Allocation *Allocation
	Phase      Phase
	Kind       Kind
	Type       string
	Detail     string
	// Position is the cursor offset at which the error was detected.
	// Only reported when non-zero.
	Position int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Position > 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Position))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Range != nil {
		fmt.Fprintf(&b, " (value %v, range [%v, %v])", e.Value, e.Range.Min, e.Range.Max)
	}

	if e.Allocation != nil {
		fmt.Fprintf(&b, " (limit %d, current %d, requested %d)",
			e.Allocation.Limit, e.Allocation.Current, e.Allocation.Requested)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the name of the type being decoded or encoded
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Range sets the inclusive range the value was checked against
func (b *Builder) Range(lo, hi any) *Builder {
	b.err.Range = &Range{Min: lo, Max: hi}
	return b
}

// Position sets the cursor offset
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidData creates an error for bytes that are present but not meaningful
func InvalidData(phase Phase, typeName, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Type:   typeName,
		Detail: detail,
	}
}

// IllegalValue creates an error for a value outside its type's legal set
func IllegalValue(phase Phase, typeName string, value any, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIllegalValue,
		Type:   typeName,
		Value:  value,
		Detail: detail,
	}
}

// OutOfRange creates an error for a numeric value outside [lo, hi]
func OutOfRange(phase Phase, typeName string, value, lo, hi any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Type:   typeName,
		Value:  value,
		Range:  &Range{Min: lo, Max: hi},
		Detail: fmt.Sprintf("value %v out of range for %s", value, typeName),
	}
}

// AllocationLimit creates a heap allocation limit error
func AllocationLimit(limit, current, requested int) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindAllocationLimit,
		Allocation: &Allocation{
			Limit:     limit,
			Current:   current,
			Requested: requested,
		},
		Detail: "allocation would exceed the decoder's heap limit",
	}
}

// EndOfBuffer creates an error for a read that needs more bytes than remain
func EndOfBuffer(phase Phase, requested, remaining int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEndOfBuffer,
		Value:  requested,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", requested, remaining),
	}
}

// CapacityExceeded creates an error for a write into a full destination
func CapacityExceeded(requested, available int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindCapacityExceeded,
		Value:  requested,
		Detail: fmt.Sprintf("need %d bytes, %d available", requested, available),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
