// Package codec encodes and decodes Slice values.
//
// A Decoder[E] reads from a borrowed buffer and an Encoder[E] writes to a
// growable or fixed buffer, both in the encoding E (slice2.Encoding or
// slice1.Encoding). The encoding is chosen by type argument, so a function
// written for *Decoder[slice2.Encoding] cannot be called with a Slice1
// decoder.
//
// # Values
//
// Scalars shared by all encodings are package functions:
//
//	ok, err := codec.DecodeBool(d)
//	err = codec.EncodeString(e, "hello")
//
// Collections take a DecodeFunc or EncodeFunc for their elements:
//
//	ids, err := codec.DecodeSequence(d, codec.DecodeInt32[slice2.Encoding])
//	m, err := codec.DecodeMap(d, codec.DecodeString[slice2.Encoding], codec.DecodeInt64[slice2.Encoding])
//
// User types implement Decodable and Encodable, and plug into collections
// through DecodeValue and EncodeValue.
//
// # Allocation limit
//
// Every Decoder tracks the heap memory it allocates on behalf of the input:
// strings and collections charge their size before allocating. The default
// limit is DefaultAllocationFactor times the input size, but never less than
// DefaultAllocationFloor; see WithAllocationLimit,
// WithProportionalAllocationLimit and WithNoAllocationLimit. Decoding fails
// with a heap_allocation_limit error once the limit would be passed.
//
// # Logging
//
// The package logs through a zap.Logger, a no-op by default. SetLogger
// replaces it.
package codec
