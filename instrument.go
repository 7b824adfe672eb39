package hookcore

import (
	"github.com/xyproto/hookcore/internal/herr"
	"github.com/xyproto/hookcore/internal/patcher"
	"github.com/xyproto/hookcore/internal/registry"
	"github.com/xyproto/hookcore/internal/trap"
)

// Instrument installs a trap at address: every time execution reaches it,
// callback runs with a snapshot of the CPU context, then the original
// instruction is replayed via a trampoline before execution continues past
// it. Per spec.md's open question, behavior is undefined if the
// instrumented instruction is itself PC-relative (AArch64 ADRP/ADR,
// x86-64 RIP-relative addressing); use InstrumentNoOriginal and emulate
// the instruction's effect in the callback instead.
func Instrument(address uint64, callback InstrumentCallback) error {
	return instrumentAt(address, callback, true)
}

// InstrumentNoOriginal installs a trap at address without ever replaying
// the original instruction; execution resumes at address+step_len after
// the callback returns (unless the callback itself redirects the context's
// PC). Required whenever the instrumented instruction is PC-relative.
func InstrumentNoOriginal(address uint64, callback InstrumentCallback) error {
	return instrumentAt(address, callback, false)
}

func instrumentAt(address uint64, callback InstrumentCallback, executeOriginal bool) error {
	if address == 0 {
		return herr.New(herr.ErrInvalidAddress)
	}
	trap.SetVerbose(Verbose)
	if err := trap.EnsureInstalled(); err != nil {
		return err
	}

	original, stepLen, err := installTrap(address)
	if err != nil {
		return err
	}

	if err := registry.Register(address, original, stepLen, registry.Callback(callback), executeOriginal); err != nil {
		return err
	}

	logf("instrument: trap installed at %#x (step=%d, executeOriginal=%v)", address, stepLen, executeOriginal)
	return nil
}

// Unhook restores the bytes originally at address and retires its
// instrumentation slot, so subsequent traps there chain straight to
// whatever handler was installed before hookcore (typically the process's
// default SIGTRAP disposition). The trampoline page, if one was
// synthesized, is left mapped: per spec.md §3 it is never freed while any
// slot could still reference it, and hookcore has no way to know another
// thread isn't mid-flight through it at the moment of the call.
func Unhook(address uint64) error {
	slot, ok := registry.Lookup(address)
	if !ok {
		return herr.New(herr.ErrInvalidAddress)
	}

	if _, err := patcher.PatchBytes(address, slot.OriginalBytes[:slot.OriginalLen]); err != nil {
		return err
	}

	registry.Unregister(address)
	logf("unhook: restored original bytes at %#x", address)
	return nil
}
