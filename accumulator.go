package crcfold

import (
	"github.com/hupe1980/crcfold/internal/braid"
	"github.com/hupe1980/crcfold/internal/clmul"
	"github.com/hupe1980/crcfold/internal/hwcrc"
	"github.com/hupe1980/crcfold/internal/uninit"
)

// Accumulator computes a checksum over a sequence of chunks. Folding chunks
// one after another yields the same checksum as folding their concatenation.
//
// The zero value is a braid accumulator starting at InitialValue. Accumulators
// are plain values: copying one forks the checksum.
//
// The start value is fixed when the accumulator is built. To continue from a
// different value, build a new accumulator.
type Accumulator struct {
	backend Backend
	initial uint32
	value   uint32
	wide    clmul.Folder
}

// New returns an accumulator on the active backend starting at InitialValue,
// adjusted by opts.
func New(opts ...Option) Accumulator {
	o := options{
		initial: InitialValue,
		backend: ActiveBackend(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	if !Available(o.backend) {
		currentLogger().LogFallback(o.backend, BackendBraid)
		o.backend = BackendBraid
	}

	return newAccumulator(o.backend, o.initial)
}

// NewWithInitial returns an accumulator on the active backend starting at start.
func NewWithInitial(start uint32) Accumulator {
	return New(WithInitial(start))
}

func newAccumulator(backend Backend, start uint32) Accumulator {
	acc := Accumulator{
		backend: backend,
		initial: start,
		value:   start,
	}
	if backend == BackendCLMUL {
		acc.wide = clmul.NewWithInitial(start)
	}
	return acc
}

// Backend returns the backend this accumulator folds with.
func (a *Accumulator) Backend() Backend {
	return a.backend
}

// Fold adds p to the checksum.
func (a *Accumulator) Fold(p []byte) {
	switch a.backend {
	case BackendCLMUL:
		a.wide.Fold(p)
	case BackendHardware:
		a.value = hwcrc.Update(a.value, p)
	default:
		a.value = braid.Update(a.value, p)
	}
}

// FoldCopy writes p into dst[:len(p)] and adds p to the checksum.
//
// dst is treated as write-only: it is never read, and bytes past len(p) are
// not touched. If dst is shorter than p, FoldCopy panics with a
// *ShortBufferError before writing or folding anything.
func (a *Accumulator) FoldCopy(dst, p []byte) {
	if len(dst) < len(p) {
		panic(&ShortBufferError{Dst: len(dst), Src: len(p)})
	}

	buf := uninit.Wrap(dst[:len(p)])
	if a.backend == BackendCLMUL {
		a.wide.FoldCopy(&buf, p)
		return
	}

	a.Fold(p)
	_, _ = buf.Write(p)
}

// Finish returns the checksum of everything folded so far.
//
// Finish does not modify the accumulator; further folds continue the same
// checksum.
func (a *Accumulator) Finish() uint32 {
	if a.backend == BackendCLMUL {
		return a.wide.Finish()
	}
	return a.value
}

// Reset discards everything folded and restarts from the original start value.
func (a *Accumulator) Reset() {
	*a = newAccumulator(a.backend, a.initial)
}
