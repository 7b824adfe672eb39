//go:build arm64

package hookcore

import "github.com/xyproto/hookcore/internal/patcher"

// patchcode writes newOpcode, little-endian, over the 4-byte instruction
// word at address via PatchU32, which additionally enforces AArch64's
// 4-byte address alignment requirement (spec.md §4.1).
func patchcode(address uint64, newOpcode uint32) ([]byte, error) {
	original, err := patcher.PatchU32(address, newOpcode)
	if err != nil {
		return nil, err
	}
	return []byte{
		byte(original),
		byte(original >> 8),
		byte(original >> 16),
		byte(original >> 24),
	}, nil
}
