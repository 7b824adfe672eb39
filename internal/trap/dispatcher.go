// Package trap installs and dispatches the SIGTRAP/SIGILL handlers that
// back hookcore's instrumentation and no-original-execution hooks. A signal
// only ever reaches user code by way of dispatch, which decides whether the
// trap belongs to hookcore at all before doing anything else.
package trap

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/xyproto/hookcore/internal/ctxview"
	"github.com/xyproto/hookcore/internal/registry"
)

// Verbose mirrors the package-level diagnostics flag the root package
// exposes; the root package pushes it here via SetVerbose so this package
// never has to import the root package (which would cycle back into trap).
var Verbose bool

// SetVerbose configures trap-dispatch diagnostics. Called from the root
// package's init and again before every instrumentation install, so a
// change to the root Verbose flag made before instrumenting is picked up.
func SetVerbose(v bool) { Verbose = v }

var installOnce sync.Once
var installErr error

// EnsureInstalled installs hookcore's SIGTRAP (and, on AArch64, SIGILL)
// handlers exactly once per process, chaining to whatever was previously
// installed. Safe to call repeatedly; later Register calls in
// internal/registry never need to reinstall anything.
func EnsureInstalled() error {
	installOnce.Do(func() {
		for _, sig := range trapSignals {
			if err := installSignal(sig); err != nil {
				installErr = err
				return
			}
		}
	})
	return installErr
}

// dispatch is the architecture-agnostic core of every signal path: it
// receives a *ctxview.Context already marshaled out of (or aliased onto)
// the kernel's ucontext, decides whether the trap belongs to one of
// hookcore's registered slots, and either runs the slot's callback and
// picks a resume target, or chains to whatever handler/disposition was
// installed before hookcore's.
func dispatch(sig int, ctx *ctxview.Context, infoPtr, ucPtr unsafe.Pointer) {
	address := trapAddress(ctx)

	if !isTrapHere(address) {
		if Verbose {
			fmt.Fprintf(os.Stderr, "hookcore: trap: signal %d at %#x is not ours, chaining\n", sig, address)
		}
		chain(sig, infoPtr, ucPtr)
		return
	}

	slot, ok := registry.Lookup(address)
	if !ok {
		if Verbose {
			fmt.Fprintf(os.Stderr, "hookcore: trap: no registered slot at %#x, chaining\n", address)
		}
		chain(sig, infoPtr, ucPtr)
		return
	}

	pcBefore := ctx.GetPC()
	slot.Callback(address, ctx)
	pcAfter := ctx.GetPC()

	switch {
	case pcAfter != pcBefore:
		// The callback itself redirected control flow (set ctx's PC); honor
		// that unconditionally and do not apply any of hookcore's own
		// resume logic on top of it.
	case slot.ReturnToCaller:
		ctx.SetPC(returnAddress(ctx))
	case slot.ExecuteOriginal:
		ctx.SetPC(slot.TrampolinePC)
	default:
		ctx.SetPC(address + uint64(slot.StepLen))
	}
}
