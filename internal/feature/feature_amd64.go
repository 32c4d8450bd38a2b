//go:build amd64 && !noasm

package feature

import "github.com/klauspost/cpuid/v2"

func init() {
	// x86 has no IEEE CRC-32 instruction; SSE4.2 CRC32 is Castagnoli only.
	hasWideSIMD = cpuid.CPU.Supports(cpuid.SSE2, cpuid.SSE4, cpuid.CLMUL)
	initBackends()
}
