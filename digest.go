package crcfold

import (
	"encoding/binary"
	"hash"
)

// Digest is a hash.Hash32 backed by an Accumulator.
type Digest struct {
	acc Accumulator
}

var _ hash.Hash32 = (*Digest)(nil)

// NewDigest returns a hash.Hash32 computing CRC-32 (IEEE). Its Sum method lays
// the value out in big-endian byte order, like hash/crc32.
func NewDigest(opts ...Option) *Digest {
	return &Digest{acc: New(opts...)}
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return 1 }

// Reset restarts the digest from its start value.
func (d *Digest) Reset() { d.acc.Reset() }

// Write adds p to the running checksum. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.acc.Fold(p)
	return len(p), nil
}

// Sum32 returns the current checksum.
func (d *Digest) Sum32() uint32 { return d.acc.Finish() }

// Sum appends the current checksum to b.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

// Backend returns the backend the digest folds with.
func (d *Digest) Backend() Backend { return d.acc.Backend() }
