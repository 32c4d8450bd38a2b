//go:build arm64 && !noasm

package hwcrc

const native = true

// updateCRC32 is defined in hwcrc_arm64.s. It works on the raw register.
//
//go:noescape
func updateCRC32(crc uint32, p []byte) uint32

func updateArch(crc uint32, p []byte) uint32 {
	return updateCRC32(crc, p)
}
