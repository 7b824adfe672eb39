//go:build amd64

package trampoline

import (
	"github.com/xyproto/hookcore/internal/patcher"
)

// Create builds a trampoline that replays originalBytes (the instruction(s)
// overwritten at patchAddress) and then jumps to patchAddress+len(originalBytes).
// Prefers a 5-byte rel32 jump; falls back to the 14-byte absolute indirect
// stub when the destination is out of rel32 range.
func Create(patchAddress uint64, originalBytes []byte) (uint64, error) {
	pageSize, err := patcher.PageSize()
	if err != nil {
		return 0, err
	}

	base, err := allocatePage(pageSize)
	if err != nil {
		return 0, err
	}

	nextAddress := patchAddress + uint64(len(originalBytes))

	writeBytes(base, 0, originalBytes)

	jumpFrom := uint64(base) + uint64(len(originalBytes))
	jump, err := patcher.EncodeJmpRel32(jumpFrom, nextAddress)
	if err != nil {
		jump = patcher.AbsoluteIndirectJumpStub(nextAddress)
	}
	writeBytes(base, len(originalBytes), jump)

	total := len(originalBytes) + len(jump)
	patcher.FlushICache(base, total)

	if err := protectExecutable(base, pageSize); err != nil {
		return 0, err
	}

	return uint64(base), nil
}
