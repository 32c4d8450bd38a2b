// Package crcio checksums data as it moves through io.Reader and io.Writer.
package crcio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/crcfold"
	"github.com/hupe1980/crcfold/internal/mem"
)

// GzipTrailerSize is the length of the RFC 1952 member trailer.
const GzipTrailerSize = 8

// copyBufferSize is the staging buffer used by Copy.
const copyBufferSize = 32 << 10

var errInvalidWrite = errors.New("invalid write result")

// Writer checksums every byte successfully written to the underlying writer.
type Writer struct {
	w   io.Writer
	acc crcfold.Accumulator
	n   int64
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer, opts ...crcfold.Option) *Writer {
	return &Writer{w: w, acc: crcfold.New(opts...)}
}

// Write writes p to the underlying writer and folds the bytes it accepted.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.acc.Fold(p[:n])
		w.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes written so far.
func (w *Writer) Sum32() uint32 { return w.acc.Finish() }

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 { return w.n }

// Reader checksums every byte read from the underlying reader.
type Reader struct {
	r   io.Reader
	acc crcfold.Accumulator
	n   int64
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader, opts ...crcfold.Option) *Reader {
	return &Reader{r: r, acc: crcfold.New(opts...)}
}

// Read reads from the underlying reader and folds the bytes it returned.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.acc.Fold(p[:n])
		r.n += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (r *Reader) Sum32() uint32 { return r.acc.Finish() }

// Count returns the number of bytes read so far.
func (r *Reader) Count() int64 { return r.n }

// Verify compares the checksum of the bytes read so far against want.
// It returns a *crcfold.ChecksumError on mismatch.
func (r *Reader) Verify(want uint32) error {
	return crcfold.VerifyChecksum(want, r.Sum32())
}

// Copy copies src to dst until EOF and returns the number of bytes copied and
// the checksum of the bytes dst accepted. It stages data in a 64-byte aligned buffer so
// the wide backends see aligned input.
func Copy(dst io.Writer, src io.Reader) (int64, uint32, error) {
	buf := mem.AllocAligned(copyBufferSize)
	acc := crcfold.New()

	var written int64
	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			if nw < 0 || nw > nr {
				nw = 0
				if werr == nil {
					werr = errInvalidWrite
				}
			}
			acc.Fold(buf[:nw])
			written += int64(nw)
			if werr != nil {
				return written, acc.Finish(), werr
			}
			if nw != nr {
				return written, acc.Finish(), io.ErrShortWrite
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return written, acc.Finish(), nil
			}
			return written, acc.Finish(), rerr
		}
	}
}

// ReadGzipTrailer decodes the CRC-32 and ISIZE fields of a gzip member trailer
// from the last 8 bytes of p.
func ReadGzipTrailer(p []byte) (crc, size uint32, err error) {
	if len(p) < GzipTrailerSize {
		return 0, 0, fmt.Errorf("gzip trailer: need %d bytes, have %d: %w", GzipTrailerSize, len(p), io.ErrUnexpectedEOF)
	}
	t := p[len(p)-GzipTrailerSize:]
	return binary.LittleEndian.Uint32(t[0:4]), binary.LittleEndian.Uint32(t[4:8]), nil
}

// AppendGzipTrailer appends the gzip member trailer for a checksum and an
// uncompressed length (taken modulo 2^32) to b.
func AppendGzipTrailer(b []byte, crc uint32, size int64) []byte {
	b = binary.LittleEndian.AppendUint32(b, crc)
	return binary.LittleEndian.AppendUint32(b, uint32(size)) //nolint:gosec // ISIZE is defined modulo 2^32
}
