package crcfold

import (
	"github.com/hupe1980/crcfold/internal/feature"
)

// Backend identifies a checksum implementation strategy.
type Backend = feature.Backend

const (
	// BackendBraid is the interleaved table-driven backend. Always available.
	BackendBraid = feature.Braid
	// BackendHardware uses the arm64 CRC32 instructions.
	BackendHardware = feature.Hardware
	// BackendCLMUL uses x86-64 carry-less multiplication.
	BackendCLMUL = feature.CLMUL
)

// ActiveBackend returns the backend new accumulators use by default.
func ActiveBackend() Backend {
	return feature.Active()
}

// Available reports whether the CPU can run b.
func Available(b Backend) bool {
	return feature.IsAvailable(b)
}

// ParseBackend parses a backend name such as "braid", "hardware" or "clmul".
func ParseBackend(s string) (Backend, bool) {
	return feature.ParseBackend(s)
}

// CPUInfo describes the executing processor.
type CPUInfo = feature.CPUInfo

// CPU returns a description of the executing processor.
func CPU() CPUInfo {
	return feature.Describe()
}
