//go:build !cgo

package asmfront

import (
	"github.com/xyproto/hookcore/internal/arch"
	"github.com/xyproto/hookcore/internal/herr"
)

// Assemble always fails: building without cgo means keystone was never
// linked in.
func Assemble(target arch.Arch, source string, address uint64) ([]byte, error) {
	return nil, herr.New(herr.ErrUnsupportedOperation)
}
