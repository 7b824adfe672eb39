//go:build amd64

package patcher

import (
	"github.com/xyproto/hookcore/internal/herr"
	"golang.org/x/arch/x86/x86asm"
)

// InstructionWidth decodes the instruction at address and returns its byte
// length (1..=15), failing with ErrDecodeFailed if the bytes do not form a
// valid instruction. Used both to size the NOP padding Patchcode writes
// after its 4-byte opcode when the replaced instruction is wider, and to
// size the bytes the trampoline replays.
func InstructionWidth(address uint64) (int, error) {
	// 15 is the longest possible x86-64 instruction encoding.
	code := ReadBytes(address, 15)
	inst, err := x86asm.Decode(code, 64)
	if err != nil {
		return 0, herr.New(herr.ErrDecodeFailed)
	}
	return inst.Len, nil
}
