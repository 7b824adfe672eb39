package hookcore

import (
	"github.com/xyproto/hookcore/internal/patcher"
	"github.com/xyproto/hookcore/internal/registry"
)

func cacheOriginalOpcode(address uint64, original []byte) {
	if len(original) < 4 {
		return
	}
	opcode := uint32(original[0]) | uint32(original[1])<<8 | uint32(original[2])<<16 | uint32(original[3])<<24
	registry.CacheOpcode(address, opcode)
}

// PatchBytes overwrites the len(newBytes) bytes at address with newBytes
// exactly, with no instruction-boundary awareness, and returns the bytes
// that were there before. Use Patchcode instead unless the caller already
// knows newBytes covers a whole number of instructions starting at address.
func PatchBytes(address uint64, newBytes []byte) ([]byte, error) {
	original, err := patcher.PatchBytes(address, newBytes)
	if err != nil {
		return nil, err
	}
	cacheOriginalOpcode(address, original)
	return original, nil
}

// Patchcode overwrites the instruction at address with the low 4 bytes of
// newOpcode, little-endian, and returns the 4 bytes that were there before.
// On AArch64 every instruction is exactly 4 bytes, so this is a plain
// word-for-word swap. On x86-64, where instructions are variable-length,
// hookcore first decodes the instruction already at address: if it is
// wider than 4 bytes the remainder is filled with NOP (0x90) so the next
// instruction boundary in the code stream is undisturbed; if it is
// narrower, newOpcode cannot fit without clobbering the following
// instruction and Patchcode fails with ErrPatchTooLong.
func Patchcode(address uint64, newOpcode uint32) (uint32, error) {
	original, err := patchcode(address, newOpcode)
	if err != nil {
		return 0, err
	}
	cacheOriginalOpcode(address, original[:4])
	return uint32(original[0]) | uint32(original[1])<<8 | uint32(original[2])<<16 | uint32(original[3])<<24, nil
}
