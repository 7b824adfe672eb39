//go:build arm64

package hookcore

import (
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/patcher"
)

// installInlineHook prefers a direct B, falling back to the 16-byte
// LDR/BR far-jump stub when target is more than +-128MiB away.
func installInlineHook(address, target uint64) (uint32, error) {
	branch, err := patcher.EncodeB(address, target)
	if err == nil {
		var buf [4]byte
		buf[0], buf[1], buf[2], buf[3] = byte(branch), byte(branch>>8), byte(branch>>16), byte(branch>>24)
		original, err := patcher.PatchBytes(address, buf[:])
		if err != nil {
			return 0, err
		}
		return uint32(original[0]) | uint32(original[1])<<8 | uint32(original[2])<<16 | uint32(original[3])<<24, nil
	}
	if !herr.Is(err, herr.ErrBranchOutOfRange) {
		return 0, err
	}
	return patcher.PatchFarJump(address, target)
}
