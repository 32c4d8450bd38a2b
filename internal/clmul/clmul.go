// Package clmul folds CRC-32 (IEEE) input in 64-byte blocks with carry-less
// multiplication.
//
// The block kernel is github.com/klauspost/crc32, which runs PCLMULQDQ (and
// VPCLMULQDQ on AVX-512 parts) over 16-byte lanes. A Folder feeds it whole
// 16-byte aligned blocks only. Bytes that do not complete a block are held back
// and carried into the next Fold; Finish reduces them into the result.
package clmul

import (
	"io"

	"github.com/klauspost/crc32"

	"github.com/hupe1980/crcfold/internal/braid"
	"github.com/hupe1980/crcfold/internal/mem"
	"github.com/hupe1980/crcfold/internal/uninit"
)

const (
	// BlockSize is the number of bytes the kernel consumes per folding step.
	BlockSize = 64

	laneAlign = 16

	// stripeSize bounds how far the copy runs ahead of the fold in FoldCopy,
	// so the source is still cache resident when it is folded.
	stripeSize = 4 << 10
)

// Folder is the running state of one checksum. The zero value is a checksum
// with initial value 0. Folder values may be copied; copies are independent.
type Folder struct {
	crc     uint32
	pending [BlockSize]byte
	n       int
}

// New returns a Folder with initial value 0.
func New() Folder {
	return NewWithInitial(0)
}

// NewWithInitial returns a Folder continuing from the checksum initial.
func NewWithInitial(initial uint32) Folder {
	return Folder{crc: initial}
}

// Fold adds p to the checksum.
func (f *Folder) Fold(p []byte) {
	if f.n > 0 {
		k := copy(f.pending[f.n:], p)
		f.n += k
		p = p[k:]
		if f.n < BlockSize {
			return
		}
		f.crc = kernel(f.crc, f.pending[:])
		f.n = 0
	}

	if len(p) >= BlockSize {
		if head := misalignment(p); head > 0 {
			f.crc = braid.Update(f.crc, p[:head])
			p = p[head:]
		}
		if run := len(p) &^ (BlockSize - 1); run > 0 {
			f.crc = kernel(f.crc, p[:run])
			p = p[run:]
		}
	}

	f.n = copy(f.pending[:], p)
}

// FoldCopy writes p to dst and adds it to the checksum, one stripe at a time.
//
// dst.Remaining() must be at least len(p). Otherwise FoldCopy panics with
// io.ErrShortBuffer before writing or folding anything.
func (f *Folder) FoldCopy(dst *uninit.Buffer, p []byte) {
	if dst.Remaining() < len(p) {
		panic(io.ErrShortBuffer)
	}
	for len(p) > 0 {
		n := min(len(p), stripeSize)
		_, _ = dst.Write(p[:n])
		f.Fold(p[:n])
		p = p[n:]
	}
}

// Finish returns the checksum of everything folded so far. It does not modify
// the Folder.
func (f *Folder) Finish() uint32 {
	return braid.Update(f.crc, f.pending[:f.n])
}

// Pending returns the number of bytes held back for the next block.
func (f *Folder) Pending() int {
	return f.n
}

func kernel(crc uint32, p []byte) uint32 {
	return crc32.Update(crc, crc32.IEEETable, p)
}

// misalignment returns the number of bytes before the first 16-byte boundary in p.
func misalignment(p []byte) int {
	return (laneAlign - mem.Misalignment(p, laneAlign)) & (laneAlign - 1)
}
