// Package uninit provides a write-only view over a destination buffer whose
// contents are indeterminate until written.
//
// A Buffer never reads the memory it wraps and never hands out the unwritten
// suffix. Only the prefix written through the view is reachable, via Filled.
package uninit

import "io"

// Buffer is an append-only cursor over dst. The zero value is an empty buffer.
type Buffer struct {
	dst []byte
	n   int
}

// Wrap returns a write-only view over dst. The previous contents of dst are
// treated as garbage.
func Wrap(dst []byte) Buffer {
	return Buffer{dst: dst}
}

// Cap returns the total number of bytes the view can hold.
func (b *Buffer) Cap() int {
	return len(b.dst)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.n
}

// Remaining returns the number of bytes that can still be written.
func (b *Buffer) Remaining() int {
	return len(b.dst) - b.n
}

// Write appends p. Writes are all-or-nothing: if p does not fit, nothing is
// written and io.ErrShortBuffer is returned.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > b.Remaining() {
		return 0, io.ErrShortBuffer
	}
	b.n += copy(b.dst[b.n:], p)
	return len(p), nil
}

// Filled returns the initialized prefix. The returned slice aliases dst.
func (b *Buffer) Filled() []byte {
	return b.dst[:b.n:b.n]
}

// Full reports whether every byte of dst has been written.
func (b *Buffer) Full() bool {
	return b.n == len(b.dst)
}
