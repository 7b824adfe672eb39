//go:build amd64

package hookcore

import "github.com/xyproto/hookcore/internal/patcher"

// installTrap decodes the instruction at address, saves its full bytes
// (needed later for the trampoline replay, even though only the first byte
// is overwritten), and arms it by overwriting that first byte with INT3,
// an atomic 1-byte write per spec.md §5.
func installTrap(address uint64) ([]byte, int, error) {
	width, err := patcher.InstructionWidth(address)
	if err != nil {
		return nil, 0, err
	}

	original := patcher.ReadBytes(address, width)
	if _, err := patcher.PatchBytes(address, []byte{patcher.Int3Opcode}); err != nil {
		return nil, 0, err
	}
	return original, width, nil
}
