//go:build amd64

package hookcore

import (
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/patcher"
)

// installInlineHook prefers a 5-byte rel32 JMP, falling back to the
// 12-byte MOV RAX,imm64; JMP RAX sequence when target is out of rel32
// range.
func installInlineHook(address, target uint64) (uint32, error) {
	jump, err := patcher.EncodeJmpRel32(address, target)
	if err != nil {
		if !herr.Is(err, herr.ErrBranchOutOfRange) {
			return 0, err
		}
		jump = patcher.EncodeAbsoluteJump(target)
	}

	original, err := patcher.PatchBytes(address, jump)
	if err != nil {
		return 0, err
	}
	return uint32(original[0]) | uint32(original[1])<<8 | uint32(original[2])<<16 | uint32(original[3])<<24, nil
}
