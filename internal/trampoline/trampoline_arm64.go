//go:build arm64

package trampoline

import (
	"github.com/xyproto/hookcore/internal/patcher"
)

// stubSize is original-word(4) + LDR(4) + BR(4) + literal(8).
const stubSize = 20

// Create builds a trampoline that replays the 4-byte original instruction
// at patchAddress and then jumps to patchAddress+len(originalBytes) (always
// patchAddress+4 on AArch64). Returns the trampoline's entry address.
func Create(patchAddress uint64, originalBytes []byte) (uint64, error) {
	pageSize, err := patcher.PageSize()
	if err != nil {
		return 0, err
	}

	base, err := allocatePage(pageSize)
	if err != nil {
		return 0, err
	}

	nextPC := patchAddress + uint64(len(originalBytes))

	writeBytes(base, 0, originalBytes)
	writeLE32(base, 4, 0x5800_0050) // LDR X16, [PC, #8]
	writeLE32(base, 8, 0xD61F_0200) // BR X16
	writeLE64(base, 12, nextPC)

	patcher.FlushICache(base, stubSize)

	if err := protectExecutable(base, pageSize); err != nil {
		return 0, err
	}

	return uint64(base), nil
}

func writeLE32(base uintptr, offset int, v uint32) {
	var buf [4]byte
	buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	writeBytes(base, offset, buf[:])
}

func writeLE64(base uintptr, offset int, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	writeBytes(base, offset, buf[:])
}
