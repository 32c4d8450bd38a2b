package crcfold

import (
	"github.com/hupe1980/crcfold/internal/braid"
)

const (
	// InitialValue is the checksum of the empty input and the default start
	// of every accumulator.
	InitialValue uint32 = 0

	// Size is the size of a CRC-32 checksum in bytes.
	Size = 4

	// ShortInputThreshold is the input length below which the one-shot entry
	// points skip backend selection and use the braid tables directly.
	ShortInputThreshold = 64
)

// CRC32 returns the checksum of p continuing from start.
func CRC32(p []byte, start uint32) uint32 {
	if len(p) < ShortInputThreshold {
		return braid.Update(start, p)
	}

	acc := NewWithInitial(start)
	acc.Fold(p)
	return acc.Finish()
}

// Checksum returns the checksum of p.
func Checksum(p []byte) uint32 {
	return CRC32(p, InitialValue)
}

// CRC32Braid returns the checksum of p continuing from start, always using the
// table-driven backend.
func CRC32Braid(p []byte, start uint32) uint32 {
	return braid.Update(start, p)
}

// CRC32Copy copies p into dst and returns the checksum of p.
//
// dst must be at least len(p) bytes long; otherwise CRC32Copy panics with a
// *ShortBufferError before touching dst. Bytes of dst past len(p) are left
// alone.
func CRC32Copy(dst, p []byte) uint32 {
	if len(dst) < len(p) {
		panic(&ShortBufferError{Dst: len(dst), Src: len(p)})
	}

	if len(p) < ShortInputThreshold {
		copy(dst, p)
		return braid.Update(InitialValue, p)
	}

	acc := New()
	acc.FoldCopy(dst, p)
	return acc.Finish()
}
