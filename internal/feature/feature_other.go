//go:build (!amd64 && !arm64) || noasm

package feature

func init() {
	initBackends()
}
