package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	p := make([]byte, n)
	r.Fill(p)
	return p
}

// Fill overwrites dst with pseudo-random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Split cuts p into consecutive chunks of random length in [0, maxChunk].
// Empty chunks are allowed; the chunks always concatenate back to p.
func (r *RNG) Split(p []byte, maxChunk int) [][]byte {
	maxChunk = max(maxChunk, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	var chunks [][]byte
	for len(p) > 0 {
		n := min(r.rand.Intn(maxChunk+1), len(p))
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}

// SplitEvery cuts p into chunks of exactly size bytes (the last may be shorter).
func SplitEvery(p []byte, size int) [][]byte {
	size = max(size, 1)

	var chunks [][]byte
	for len(p) > 0 {
		n := min(size, len(p))
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}
