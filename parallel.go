package crcfold

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ChecksumParallel returns CRC32(p, start), computing chunks of chunkSize
// bytes concurrently and joining them with Combine.
//
// At most GOMAXPROCS chunks are in flight. Cancellation of ctx is observed
// before each chunk starts.
func ChecksumParallel(ctx context.Context, p []byte, start uint32, chunkSize int) (uint32, error) {
	if chunkSize <= 0 {
		return 0, ErrInvalidChunkSize
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) <= chunkSize {
		return CRC32(p, start), nil
	}

	chunks := (len(p) + chunkSize - 1) / chunkSize
	sums := make([]uint32, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < chunks; i++ {
		i := i
		chunk := p[i*chunkSize : min((i+1)*chunkSize, len(p))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sums[i] = CRC32(chunk, InitialValue)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	crc := start
	for i, sum := range sums {
		n := min(chunkSize, len(p)-i*chunkSize)
		crc = Combine(crc, sum, int64(n))
	}
	return crc, nil
}
