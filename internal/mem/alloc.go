// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of the widest carry-less multiply lanes (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	return AllocAt(size, Alignment, 0)
}

// AllocAt allocates a byte slice whose first byte sits at an address congruent
// to offset modulo align. align must be a power of two; offset is reduced
// modulo align. It returns nil for non-positive sizes.
//
// Checksum kernels use it to place identical bytes at every misalignment.
func AllocAt(size, align, offset int) []byte {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil
	}

	buf := make([]byte, size+2*align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	mask := uintptr(align - 1)
	start := (uintptr(align) - (addr & mask)) & mask
	start += uintptr(offset) & mask

	return buf[start : start+uintptr(size) : start+uintptr(size)]
}

// Misalignment returns the address of p's first byte modulo align.
func Misalignment(p []byte, align int) int {
	if len(p) == 0 || align <= 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&p[0])) //nolint:gosec // address inspection only
	return int(addr % uintptr(align))
}
