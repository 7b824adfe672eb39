//go:build amd64

package hookcore

import (
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/patcher"
)

const nopOpcode = 0x90

// patchcode decodes the instruction at address and writes newOpcode's low
// 4 bytes over it, NOP-padding any trailing bytes of a wider instruction
// and failing if the decoded instruction is narrower than 4 bytes.
func patchcode(address uint64, newOpcode uint32) ([]byte, error) {
	width, err := patcher.InstructionWidth(address)
	if err != nil {
		return nil, err
	}
	if width < 4 {
		return nil, herr.New(herr.ErrPatchTooLong)
	}

	buf := make([]byte, width)
	buf[0] = byte(newOpcode)
	buf[1] = byte(newOpcode >> 8)
	buf[2] = byte(newOpcode >> 16)
	buf[3] = byte(newOpcode >> 24)
	for i := 4; i < width; i++ {
		buf[i] = nopOpcode
	}

	return patcher.PatchBytes(address, buf)
}
