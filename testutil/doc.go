// Package testutil provides testing utilities for crcfold.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic byte streams and random chunkings of them.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(4096)
//
// # Chunking
//
//	for _, chunk := range rng.Split(data, 100) {
//	    acc.Fold(chunk)
//	}
package testutil
