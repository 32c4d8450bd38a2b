// Package feature answers which CRC-32 backends the executing CPU can run.
//
// # Backends
//
//   - braid: table-driven, always available
//   - hardware: arm64 CRC32 instructions (one 64-bit word per instruction)
//   - clmul: carry-less multiplication folding (x86-64 PCLMULQDQ + SSE4.1)
//
// Detection runs once at package init and never changes for the lifetime of the
// process. Build with -tags noasm to force the braid fallback.
//
// Set CRCFOLD_BACKEND to pin a backend; the override is ignored when the CPU
// cannot run it.
package feature
