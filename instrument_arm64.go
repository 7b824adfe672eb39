//go:build arm64

package hookcore

import "github.com/xyproto/hookcore/internal/patcher"

// installTrap overwrites the 4-byte AArch64 instruction at address with
// BRK #0 and returns the bytes it replaced, always 4 of them.
func installTrap(address uint64) ([]byte, int, error) {
	trapWord := make([]byte, 4)
	trapWord[0] = byte(patcher.BrkOpcode)
	trapWord[1] = byte(patcher.BrkOpcode >> 8)
	trapWord[2] = byte(patcher.BrkOpcode >> 16)
	trapWord[3] = byte(patcher.BrkOpcode >> 24)

	original, err := patcher.PatchBytes(address, trapWord)
	if err != nil {
		return nil, 0, err
	}
	return original, 4, nil
}
