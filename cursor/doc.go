// Package cursor provides the bounds-checked byte cursors the Slice codec reads
// from and writes to.
//
// A Reader is a read-only view over a borrowed buffer. Reads never copy:
// returned slices alias the buffer, so they stay valid only as long as the
// caller keeps the buffer unchanged. Exact-count reads are atomic; when they
// fail, the position is left where it was.
//
// A Writer appends to a growable buffer, or to a fixed-capacity buffer
// supplied by the caller. Reserve hands out a region at the write frontier
// that later writes cannot overlap.
//
// Cursors are not safe for concurrent use. Create one per operation and drop
// it when the operation completes.
package cursor
