// Package crcfold computes CRC-32 (IEEE 802.3) checksums, incrementally and
// fused with a copy, on the fastest backend the CPU supports.
//
// # Quick Start
//
// One-shot:
//
//	sum := crcfold.CRC32(data, crcfold.InitialValue)
//
// Streaming:
//
//	acc := crcfold.New()
//	acc.Fold(chunk1)
//	acc.Fold(chunk2)
//	sum := acc.Finish()
//
// Copy while checksumming:
//
//	sum := crcfold.CRC32Copy(dst, src) // dst[:len(src)] == src afterwards
//
// # Values
//
// Checksums follow the zlib convention used by hash/crc32: the initial value
// is 0 and a checksum can be passed back in as the start of the next call, so
// CRC32(b, CRC32(a, s)) == CRC32(append(a, b...), s).
//
// # Backends
//
// Three interchangeable backends produce identical results:
//
//	Backend    Where                          How
//	braid      everywhere                     5-lane interleaved table lookups
//	hardware   arm64 with the CRC extension   one CRC32X instruction per 8 bytes
//	clmul      x86-64 with PCLMULQDQ+SSE4.1   carry-less multiply, 64-byte blocks
//
// Inputs shorter than 64 bytes always take the braid path. The active backend
// is chosen once per process; set CRCFOLD_BACKEND=braid|hardware|clmul to pin
// it, or pass WithBackend to a single accumulator.
//
// # Concurrency
//
// All functions are safe for concurrent use. An Accumulator or Digest must not
// be mutated from several goroutines at once. ChecksumParallel splits a buffer
// across goroutines and joins the parts with Combine.
package crcfold
