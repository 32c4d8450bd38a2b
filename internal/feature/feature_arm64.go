//go:build arm64 && !noasm

package feature

import "golang.org/x/sys/cpu"

func init() {
	hasHardwareCRC = cpu.ARM64.HasCRC32
	initBackends()
}
