package crcfold

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is returned (or carried by a panic) when a copy
	// destination is shorter than its source.
	ErrShortBuffer = errors.New("destination buffer shorter than source")

	// ErrChecksumMismatch is returned when computed and expected checksums differ.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidChunkSize is returned when a chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)

// ShortBufferError reports a copy destination that cannot hold the source.
// CRC32Copy and Accumulator.FoldCopy panic with a *ShortBufferError.
type ShortBufferError struct {
	Dst int
	Src int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("destination buffer too short: %d bytes for %d source bytes", e.Dst, e.Src)
}

func (e *ShortBufferError) Unwrap() error { return ErrShortBuffer }

// ChecksumError reports a checksum that does not match the expected value.
type ChecksumError struct {
	Want uint32
	Got  uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: want %08x, got %08x", e.Want, e.Got)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// VerifyChecksum returns a *ChecksumError if got differs from want.
func VerifyChecksum(want, got uint32) error {
	if want != got {
		return &ChecksumError{Want: want, Got: got}
	}
	return nil
}
