package crcfold

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/crcfold/testutil"
)

var allBackends = []Backend{BackendBraid, BackendHardware, BackendCLMUL}

func TestAccumulatorDefaults(t *testing.T) {
	acc := New()
	assert.Equal(t, ActiveBackend(), acc.Backend())
	assert.Equal(t, InitialValue, acc.Finish())

	var zero Accumulator
	assert.Equal(t, BackendBraid, zero.Backend())
	zero.Fold([]byte("123456789"))
	assert.Equal(t, uint32(0xcbf43926), zero.Finish())
}

func TestWithBackendFallsBackToBraid(t *testing.T) {
	for _, b := range allBackends {
		acc := New(WithBackend(b))
		if Available(b) {
			assert.Equal(t, b, acc.Backend())
		} else {
			assert.Equal(t, BackendBraid, acc.Backend())
		}
	}

	acc := New(WithBackend(Backend(200)))
	assert.Equal(t, BackendBraid, acc.Backend())
}

func TestBackendTransparency(t *testing.T) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{0, 1, 63, 64, 65, 500, 1 << 15} {
		p := rng.Bytes(n)
		start := rng.Uint32()
		want := crc32.Update(start, crc32.IEEETable, p)

		for _, b := range allBackends {
			t.Run(fmt.Sprintf("%s/n=%d", b, n), func(t *testing.T) {
				acc := New(WithBackend(b), WithInitial(start))
				acc.Fold(p)
				assert.Equal(t, want, acc.Finish())
			})
		}
	}
}

func TestAccumulatorChunkCombination(t *testing.T) {
	rng := testutil.NewRNG(2)
	p := rng.Bytes(5000)

	for _, b := range allBackends {
		whole := New(WithBackend(b), WithInitial(99))
		whole.Fold(p)
		want := whole.Finish()

		for _, step := range []int{1, 2, 15, 63, 64, 65, 1000} {
			acc := New(WithBackend(b), WithInitial(99))
			acc.Fold(nil)
			for _, chunk := range testutil.SplitEvery(p, step) {
				acc.Fold(chunk)
				acc.Fold([]byte{})
			}
			assert.Equal(t, want, acc.Finish(), "backend=%s step=%d", b, step)
		}

		acc := New(WithBackend(b), WithInitial(99))
		for _, chunk := range rng.Split(p, 200) {
			acc.Fold(chunk)
		}
		assert.Equal(t, want, acc.Finish(), "backend=%s random split", b)
	}
}

func TestAccumulatorFoldCopy(t *testing.T) {
	rng := testutil.NewRNG(3)
	src := rng.Bytes(20_000)

	for _, b := range allBackends {
		t.Run(b.String(), func(t *testing.T) {
			dst := bytes.Repeat([]byte{0x5A}, len(src)+16)
			acc := New(WithBackend(b))

			// Copy in uneven pieces into consecutive windows of dst.
			off := 0
			for _, n := range []int{0, 1, 63, 64, 4096, 7000} {
				acc.FoldCopy(dst[off:], src[off:off+n])
				off += n
			}
			acc.FoldCopy(dst[off:], src[off:])

			assert.Equal(t, crc32.ChecksumIEEE(src), acc.Finish())
			assert.Equal(t, src, dst[:len(src)])
			assert.Equal(t, bytes.Repeat([]byte{0x5A}, 16), dst[len(src):])
		})
	}
}

func TestAccumulatorFoldCopyShortDestination(t *testing.T) {
	for _, b := range allBackends {
		acc := New(WithBackend(b), WithInitial(5))
		dst := make([]byte, 99)

		sbe := shortBufferPanic(t, func() { acc.FoldCopy(dst, counting(100)) })
		assert.Equal(t, 99, sbe.Dst)
		assert.Equal(t, uint32(5), acc.Finish(), "no work may happen before the check")
	}
}

func TestFinishIsRepeatable(t *testing.T) {
	for _, b := range allBackends {
		acc := New(WithBackend(b))
		acc.Fold([]byte("stream "))
		first := acc.Finish()
		assert.Equal(t, first, acc.Finish())

		acc.Fold([]byte("continues"))
		assert.Equal(t, crc32.ChecksumIEEE([]byte("stream continues")), acc.Finish())
	}
}

func TestAccumulatorCopyForks(t *testing.T) {
	acc := New()
	acc.Fold(counting(100))

	fork := acc
	fork.Fold([]byte("tail"))
	acc.Fold([]byte("other"))

	assert.Equal(t, CRC32(append(counting(100), "tail"...), InitialValue), fork.Finish())
	assert.Equal(t, CRC32(append(counting(100), "other"...), InitialValue), acc.Finish())
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewWithInitial(77)
	acc.Fold(counting(300))
	acc.Reset()
	assert.Equal(t, uint32(77), acc.Finish())

	acc.Fold([]byte("abc"))
	assert.Equal(t, CRC32([]byte("abc"), 77), acc.Finish())
}

func BenchmarkAccumulator(b *testing.B) {
	p := counting(1 << 16)
	for _, backend := range allBackends {
		if !Available(backend) {
			continue
		}
		b.Run(backend.String(), func(b *testing.B) {
			b.SetBytes(int64(len(p)))
			for i := 0; i < b.N; i++ {
				acc := New(WithBackend(backend))
				acc.Fold(p)
				_ = acc.Finish()
			}
		})
	}
}
