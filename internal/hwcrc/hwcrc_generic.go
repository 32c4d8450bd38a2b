//go:build !arm64 || noasm

package hwcrc

const native = false

func updateArch(crc uint32, p []byte) uint32 {
	return updateWords(crc, p)
}
