package feature

import (
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// EnvOverride names the environment variable that pins the active backend.
const EnvOverride = "CRCFOLD_BACKEND"

// Backend identifies a CRC-32 implementation strategy.
type Backend uint8

const (
	// Braid is the interleaved table-driven fallback.
	Braid Backend = iota
	// Hardware uses a dedicated CRC-32 instruction per machine word.
	Hardware
	// CLMUL folds wide lanes with carry-less multiplication.
	CLMUL
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Braid:
		return "braid"
	case Hardware:
		return "hardware"
	case CLMUL:
		return "clmul"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "braid", "generic":
		return Braid, true
	case "hardware", "crc32":
		return Hardware, true
	case "clmul", "pclmul", "pclmulqdq":
		return CLMUL, true
	default:
		return Braid, false
	}
}

// Package-level state, written only by init.
var (
	activeBackend Backend
	hasOverride   bool

	// set by platform-specific init
	hasHardwareCRC bool
	hasWideSIMD    bool
)

// initBackends is called from platform-specific init functions after CPU
// features are detected.
func initBackends() {
	if override := os.Getenv(EnvOverride); override != "" {
		if b, ok := ParseBackend(override); ok && IsAvailable(b) {
			hasOverride = true
			activeBackend = b
			return
		}
	}

	activeBackend = Best()
}

// HasHardwareCRC reports whether the CPU has a CRC-32 (IEEE) instruction.
func HasHardwareCRC() bool {
	return hasHardwareCRC
}

// HasWideSIMD reports whether the CPU can fold with carry-less multiplication.
func HasWideSIMD() bool {
	return hasWideSIMD
}

// IsAvailable reports whether b can run on this CPU.
func IsAvailable(b Backend) bool {
	switch b {
	case Braid:
		return true
	case Hardware:
		return hasHardwareCRC
	case CLMUL:
		return hasWideSIMD
	default:
		return false
	}
}

// Best returns the fastest available backend: CLMUL, then Hardware, then Braid.
func Best() Backend {
	if hasWideSIMD {
		return CLMUL
	}
	if hasHardwareCRC {
		return Hardware
	}
	return Braid
}

// Active returns the backend selected at init, honoring CRCFOLD_BACKEND.
func Active() Backend {
	return activeBackend
}

// IsOverridden returns true if CRCFOLD_BACKEND selected the active backend.
func IsOverridden() bool {
	return hasOverride
}

// CPUInfo describes the executing processor for diagnostics.
type CPUInfo struct {
	Brand    string
	Vendor   string
	Arch     string
	Cores    int
	Features []string
}

// Describe returns the processor description reported by cpuid.
func Describe() CPUInfo {
	return CPUInfo{
		Brand:    cpuid.CPU.BrandName,
		Vendor:   cpuid.CPU.VendorString,
		Arch:     runtime.GOARCH,
		Cores:    cpuid.CPU.LogicalCores,
		Features: cpuid.CPU.FeatureSet(),
	}
}
