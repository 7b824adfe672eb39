//go:build amd64

package trap

import (
	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/patcher"
)

// maxSignal bounds the saved-previous-action table.
const maxSignal = 64

// trapAddress returns the address the trapping instruction sits at. INT3
// reports RIP already advanced past the 1-byte opcode, so the instruction
// itself started one byte earlier.
func trapAddress(ctx *ctxview.Context) uint64 {
	return ctx.GetPC() - 1
}

// isTrapHere reports whether the byte at address is hookcore's own
// INT3-encoded trap.
func isTrapHere(address uint64) bool {
	return patcher.IsTrapOpcode(patcher.ReadU8(address))
}

// returnAddress recovers the caller's return address for an inline-hook
// detour. At function entry, before any prologue executes, RSP points at
// the return address pushed by the caller's CALL; per spec.md §4.4 step 8
// RSP is then incremented by 8 to match the callee having "returned".
func returnAddress(ctx *ctxview.Context) uint64 {
	ret := patcher.ReadU64(ctx.RSP)
	ctx.RSP += 8
	return ret
}
