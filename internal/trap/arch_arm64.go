//go:build arm64

package trap

import (
	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/patcher"
)

// maxSignal bounds the saved-previous-action table; only SIGTRAP and SIGILL
// are ever installed, but signal numbers on Linux/Darwin arm64 stay well
// under 64.
const maxSignal = 64

// trapAddress returns the address the trapping instruction sits at. On
// AArch64 the BRK exception reports the PC of the BRK itself, not the
// following instruction.
func trapAddress(ctx *ctxview.Context) uint64 {
	return ctx.GetPC()
}

// isTrapHere reports whether the word at address is one of hookcore's own
// BRK-encoded traps, as opposed to a trap left by something else (a
// debugger, a different BRK immediate) sharing the same signal.
func isTrapHere(address uint64) bool {
	return patcher.IsTrapOpcode(patcher.ReadU32(address))
}

// returnAddress recovers the caller's return address for an inline-hook
// detour, held in the link register at function entry.
func returnAddress(ctx *ctxview.Context) uint64 {
	return ctx.LR()
}
