//go:build arm64

package patcher

import "github.com/xyproto/hookcore/internal/herr"

// BrkOpcode is AArch64's `brk #0`, the engine's trap opcode.
const BrkOpcode uint32 = 0xD420_0000

// BrkMask tolerates the #imm16 field when checking whether an opcode is a
// BRK this engine installed.
const BrkMask uint32 = 0xFFE0_001F

const (
	ldrX16Literal8 uint32 = 0x5800_0050 // LDR X16, [PC, #8]
	brX16          uint32 = 0xD61F_0200 // BR X16
)

// IsTrapOpcode reports whether opcode is a BRK, tolerating any immediate.
func IsTrapOpcode(opcode uint32) bool {
	return opcode&BrkMask == BrkOpcode&BrkMask
}

// EncodeB encodes an AArch64 `b` instruction branching from fromAddress to
// toAddress. Fails with ErrBranchOutOfRange when the signed 26-bit
// word-offset would overflow the +-128MiB range, or ErrInvalidAddress when
// either address is not 4-byte aligned.
func EncodeB(fromAddress, toAddress uint64) (uint32, error) {
	if fromAddress&0b11 != 0 || toAddress&0b11 != 0 {
		return 0, herr.New(herr.ErrInvalidAddress)
	}

	offset := int64(toAddress) - int64(fromAddress)
	if offset&0b11 != 0 {
		return 0, herr.New(herr.ErrBranchOutOfRange)
	}

	imm26 := offset >> 2
	const min = -(1 << 25)
	const max = (1 << 25) - 1
	if imm26 < min || imm26 > max {
		return 0, herr.New(herr.ErrBranchOutOfRange)
	}

	return 0x1400_0000 | (uint32(imm26) & 0x03FF_FFFF), nil
}

// FarJumpStub returns the 16-byte out-of-range jump sequence:
//
//	LDR X16, [PC, #8]
//	BR  X16
//	.quad toAddress
func FarJumpStub(toAddress uint64) []byte {
	buf := make([]byte, 16)
	le32(buf[0:4], ldrX16Literal8)
	le32(buf[4:8], brX16)
	le64(buf[8:16], toAddress)
	return buf
}

// PatchFarJump writes the 16-byte far-jump stub at fromAddress and returns
// the original first 4 bytes, used when EncodeB reports BranchOutOfRange.
func PatchFarJump(fromAddress, toAddress uint64) (uint32, error) {
	if fromAddress&0b11 != 0 {
		return 0, herr.New(herr.ErrInvalidAddress)
	}
	original, err := PatchBytes(fromAddress, FarJumpStub(toAddress))
	if err != nil {
		return 0, err
	}
	return beFromLE32(original[0:4]), nil
}
