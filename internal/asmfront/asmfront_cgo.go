//go:build cgo

package asmfront

import (
	"strings"

	"github.com/keystone-engine/keystone/bindings/go/keystone"

	"github.com/xyproto/hookcore/internal/arch"
	"github.com/xyproto/hookcore/internal/herr"
)

// Assemble assembles source for target at address using Keystone, returning
// ErrAsmEmptyInput for blank source and ErrAsmAssembleFailed if Keystone
// rejects the text. address matters for instructions whose encoding is
// PC-relative (branches, ADRP); the emitted bytes are only valid if the
// caller ultimately places them at that same address.
func Assemble(target arch.Arch, source string, address uint64) ([]byte, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, herr.New(herr.ErrAsmEmptyInput)
	}

	ksArch, mode, err := keystoneTarget(target)
	if err != nil {
		return nil, err
	}

	ks, err := keystone.New(ksArch, mode)
	if err != nil {
		return nil, herr.New(herr.ErrAsmAssembleFailed)
	}
	defer ks.Close()

	if ksArch == keystone.ARCH_X86 {
		// x86-64 source is read as AT&T syntax, as PatchAsm documents,
		// rather than keystone's Intel default.
		if err := ks.Option(keystone.OPT_SYNTAX, keystone.OPT_SYNTAX_ATT); err != nil {
			return nil, herr.New(herr.ErrAsmAssembleFailed)
		}
	}

	ops, _, ok := ks.Assemble(source, address)
	if !ok {
		return nil, herr.New(herr.ErrAsmAssembleFailed)
	}

	out := make([]byte, len(ops))
	for i, b := range ops {
		out[i] = byte(b)
	}
	return out, nil
}

func keystoneTarget(target arch.Arch) (keystone.Architecture, keystone.Mode, error) {
	switch target {
	case arch.ArchX86_64:
		return keystone.ARCH_X86, keystone.MODE_64, nil
	case arch.ArchARM64:
		return keystone.ARCH_ARM64, keystone.MODE_LITTLE_ENDIAN, nil
	default:
		return 0, 0, herr.New(herr.ErrUnsupportedArchitecture)
	}
}
