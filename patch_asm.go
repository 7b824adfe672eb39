package hookcore

import (
	"github.com/xyproto/hookcore/internal/arch"
	"github.com/xyproto/hookcore/internal/asmfront"
	"github.com/xyproto/hookcore/internal/herr"
)

// asmWidth is the fixed width patch_asm expects its assembled output to
// be, on both architectures: one 4-byte opcode word. original_source's
// own patch_asm (PATCH_ASM_WIDTH in src/asm.rs) enforces this identically
// for its x86-64 and AArch64 branches, even though x86-64 instructions are
// otherwise variable-length; patch_asm's asm_text argument always names a
// single instruction-word-sized edit, never a multi-instruction blob.
const asmWidth = 4

// PatchAsm assembles source for the current platform and writes the result
// at address via PatchBytes, a raw write with no instruction-boundary
// awareness of its own (the assembler already produced exactly the bytes
// to place at address). source is interpreted in AArch64 little-endian
// syntax or x86-64 AT&T syntax depending on build architecture. Assembled
// output that isn't exactly one 4-byte word fails with ErrAsmSizeMismatch.
// Requires the cgo build tag; without it this always returns
// ErrUnsupportedOperation.
func PatchAsm(address uint64, source string) ([]byte, error) {
	encoded, err := asmfront.Assemble(arch.Current().Arch, source, address)
	if err != nil {
		return nil, err
	}
	if len(encoded) != asmWidth {
		return nil, herr.WithSizeMismatch(asmWidth, len(encoded))
	}
	return PatchBytes(address, encoded)
}
