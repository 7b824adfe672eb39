package hookcore

import "github.com/xyproto/hookcore/internal/registry"

// OriginalOpcode returns the 4 bytes that were at address just before the
// most recent Patchcode, PatchBytes, or InlineHook call there (the opcode
// cache), or, when no such call was made, the bytes an Instrument call
// saved in its instrumentation slot. Returns ok == false if address was
// never patched through hookcore.
func OriginalOpcode(address uint64) (opcode uint32, ok bool) {
	return registry.OriginalOpcode(address)
}
