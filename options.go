package crcfold

type options struct {
	initial uint32
	backend Backend
}

// Option configures an Accumulator or Digest.
type Option func(*options)

// WithInitial sets the checksum to continue from. Defaults to InitialValue.
func WithInitial(start uint32) Option {
	return func(o *options) {
		o.initial = start
	}
}

// WithBackend pins the backend. A backend the CPU cannot run falls back to
// BackendBraid, which is always available.
//
// Backend choice never changes results; this exists for benchmarking and for
// cross-checking backends against each other.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}
