// Package varint implements the variable-length integers of the Slice2
// encoding.
//
// A value is shifted left by two bits and the vacated low bits hold a size
// tag t, meaning the value occupies 2^t bytes (1, 2, 4 or 8) in little-endian
// order:
//
//	tag  width  varint62 range            varuint62 range
//	───────────────────────────────────────────────────────
//	00   1      [-2^5, 2^5-1]             [0, 2^6-1]
//	01   2      [-2^13, 2^13-1]           [0, 2^14-1]
//	10   4      [-2^29, 2^29-1]           [0, 2^30-1]
//	11   8      [-2^61, 2^61-1]           [0, 2^62-1]
//
// Writers always pick the smallest width that holds the value. Readers accept
// any width.
//
// The 32-bit families are read through their 62-bit counterparts and then
// narrowed, failing with an out_of_range error if the value does not fit.
package varint
