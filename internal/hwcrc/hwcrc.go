// Package hwcrc folds input into a CRC-32 (IEEE) register one machine word at
// a time with a dedicated CRC instruction.
//
// On arm64 the CRC32X instruction consumes 8 bytes per step and the tail is
// finished with CRC32W, CRC32H and CRC32B. Elsewhere, or when the CPU lacks the
// extension, the same word-at-a-time schedule runs on a software emulation of
// the instruction, so Update is always safe to call.
package hwcrc

import (
	"encoding/binary"

	"github.com/hupe1980/crcfold/internal/braid"
	"github.com/hupe1980/crcfold/internal/feature"
)

// Available reports whether Update runs on the CRC instruction.
func Available() bool {
	return native && feature.HasHardwareCRC()
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint32, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}
	if Available() {
		return ^updateArch(^crc, p)
	}
	return ^updateWords(^crc, p)
}

// updateWords mirrors the instruction schedule of the assembly routine on a
// raw register.
func updateWords(crc uint32, p []byte) uint32 {
	for len(p) >= 8 {
		crc = braid.UpdateWord(crc, binary.LittleEndian.Uint64(p))
		p = p[8:]
	}
	for _, b := range p {
		crc = braid.UpdateByte(crc, b)
	}
	return crc
}
