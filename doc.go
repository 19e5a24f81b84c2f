// Package sliceencoding provides a Go implementation of the Slice binary
// encoding used by the Slice RPC/IDL system.
//
// Values are converted to and from a compact byte encoding in two wire format
// generations, Slice1 (legacy) and Slice2. The generations disagree on how
// sizes are written and on which integer types exist, so every algorithm that
// writes a size goes through the Encoding interface defined here.
//
// # Architecture Overview
//
//	sliceencoding/       Root package with the Encoding extension point
//	├── codec/           Decoder/Encoder, allocation limits, scalar and collection codecs
//	├── cursor/          Bounds-checked byte Reader and Writer
//	├── varint/          Slice2 variable-length integers
//	├── bitseq/          Bit sequences for optional elements
//	├── slice2/          Slice2 encoding and its Slice2-only types
//	├── slice1/          Slice1 encoding (size rule not yet implemented)
//	└── errors/          Structured error types
//
// # Quick Start
//
//	e := codec.NewEncoder[slice2.Encoding]()
//	if err := codec.EncodeString(e, "hello"); err != nil {
//	    return err
//	}
//
//	d := codec.NewDecoder[slice2.Encoding](e.Bytes())
//	s, err := codec.DecodeString(d)
//
// # Wire Format
//
//	bool            1 byte, 0 or 1
//	uint8/int8      1 byte
//	intN/uintN      N/8 bytes, little endian, two's complement
//	float32/64      IEEE 754 binary32/binary64, little endian
//	varint          2-bit size tag in the low bits, 1/2/4/8 bytes (Slice2)
//	string          [size][UTF-8 bytes]
//	sequence<T>     [size][T]*size
//	sequence<T?>    [size][bit sequence][present T]*
//	dictionary<K,V> [size]([K][V])*size
//	dictionary<K,V?> [size]([bool][K][V if set])*size
//
// # Untrusted Input
//
// Decoders track how much heap memory they have allocated and refuse to
// allocate past a limit. By default the limit is proportional to the input
// size; see codec.WithAllocationLimit and related options.
//
// # Thread Safety
//
// Decoders, Encoders and cursors are NOT thread-safe. Create one per
// operation. Independent operations over independent buffers may run in
// parallel.
package sliceencoding
