package hookcore

import "github.com/xyproto/hookcore/internal/registry"

// InlineHook redirects a function's entry point at address to target,
// preferring a direct branch (AArch64 B, x86-64 JMP rel32) and falling back
// to a far/absolute jump sequence when target is out of the direct branch's
// range. Unlike Instrument/InstrumentNoOriginal this never traps: target
// runs natively in place of the original function and is responsible for
// honoring its calling convention, including returning to the original
// caller itself. The original first 4 bytes at address are cached so
// OriginalOpcode can still answer queries with no instrumentation slot
// involved.
func InlineHook(address uint64, target uint64) (uint32, error) {
	original, err := installInlineHook(address, target)
	if err != nil {
		return 0, err
	}
	registry.CacheOpcode(address, original)
	logf("inline_hook: redirected %#x to %#x", address, target)
	return original, nil
}

// InlineHookReplace installs a trap-based function replacement at address:
// callback runs in full in place of the function body, and execution
// resumes directly at the caller's return address afterward (the link
// register on AArch64, the word at [rsp] on x86-64 at function entry).
// Neither the original instruction nor the rest of the function ever runs,
// unlike Instrument/InstrumentNoOriginal which both resume inside the
// patched function itself.
func InlineHookReplace(address uint64, callback InstrumentCallback) error {
	if err := instrumentAt(address, callback, false); err != nil {
		return err
	}
	registry.MarkReturnToCaller(address)
	logf("inline_hook: replaced function body at %#x with trap callback", address)
	return nil
}
