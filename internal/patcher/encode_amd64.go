//go:build amd64

package patcher

import "github.com/xyproto/hookcore/internal/herr"

// Int3Opcode is x86-64's `int3`, the engine's trap opcode.
const Int3Opcode uint8 = 0xCC

// IsTrapOpcode reports whether the byte at an address is int3.
func IsTrapOpcode(b uint8) bool {
	return b == Int3Opcode
}

// EncodeJmpRel32 encodes a near `jmp rel32` (E9 <disp32>) from fromAddress
// (the start of the jump instruction) to toAddress. Fails with
// ErrBranchOutOfRange when the displacement does not fit in a signed
// 32-bit value.
func EncodeJmpRel32(fromAddress, toAddress uint64) ([]byte, error) {
	const instrLen = 5
	disp := int64(toAddress) - int64(fromAddress) - instrLen
	if disp < int64(int32(-1<<31)) || disp > int64(int32(1<<31-1)) {
		return nil, herr.New(herr.ErrBranchOutOfRange)
	}
	buf := make([]byte, instrLen)
	buf[0] = 0xE9
	le32(buf[1:5], uint32(int32(disp)))
	return buf, nil
}

// EncodeAbsoluteJump encodes `MOV RAX, imm64; JMP RAX` (12 bytes), used when
// the target is out of rel32 range.
func EncodeAbsoluteJump(to uint64) []byte {
	buf := make([]byte, 12)
	buf[0], buf[1] = 0x48, 0xB8 // MOV RAX, imm64
	le64(buf[2:10], to)
	buf[10], buf[11] = 0xFF, 0xE0 // JMP RAX
	return buf
}

// AbsoluteIndirectJumpStub encodes `FF 25 00 00 00 00 <imm64>` (14 bytes): a
// RIP-relative indirect jump through a literal pool that immediately
// follows the instruction. Used by the trampoline synthesizer when its jump
// back into the patched function is out of rel32 range.
func AbsoluteIndirectJumpStub(to uint64) []byte {
	buf := make([]byte, 14)
	buf[0], buf[1] = 0xFF, 0x25
	// disp32 = 0: the target literal sits immediately after this instruction.
	le32(buf[2:6], 0)
	le64(buf[6:14], to)
	return buf
}
