package main

import (
	"fmt"

	"github.com/xyproto/hookcore"
)

// demoPatchcode mirrors original_source/examples/patchcode_add_to_mul:
// overwrite a running function's ADD with a MUL, in place, and prove the
// new behavior by calling it.
func demoPatchcode() error {
	addr, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}
	before := callUint32x2(addr, 3, 4)
	fmt.Printf("before patch: add(3,4) = %d\n", before)

	if _, err := hookcore.Patchcode(addr+addEntryOffset, mulOpcode()); err != nil {
		return fmt.Errorf("patchcode: %w", err)
	}

	after := callUint32x2(addr, 3, 4)
	fmt.Printf("after patch:  f(3,4) = %d (instruction rewritten in place)\n", after)
	return nil
}

// demoInstrument mirrors original_source/examples/instrument_with_original:
// trap on every call, observe the arguments, then let the original
// instruction run via the trampoline so the function's behavior is
// unchanged.
func demoInstrument() error {
	addr, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}

	calls := 0
	err = hookcore.Instrument(addr+addEntryOffset, func(address uint64, ctx *hookcore.HookContext) {
		calls++
		fmt.Printf("instrument: trap #%d at %#x\n", calls, address)
	})
	if err != nil {
		return fmt.Errorf("instrument: %w", err)
	}

	result := callUint32x2(addr, 5, 6)
	fmt.Printf("add(5,6) = %d, callback ran %d time(s)\n", result, calls)
	return nil
}

// demoInstrumentNoOriginal mirrors instrument_no_original: the callback
// runs and the original instruction is skipped entirely, relying on the
// callback to have produced any effect the instruction would have had.
func demoInstrumentNoOriginal() error {
	addr, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}

	err = hookcore.InstrumentNoOriginal(addr+addEntryOffset, func(address uint64, ctx *hookcore.HookContext) {
		fmt.Printf("instrument_no_original: trap at %#x, add is never executed\n", address)
	})
	if err != nil {
		return fmt.Errorf("instrument_no_original: %w", err)
	}

	result := callUint32x2(addr, 5, 6)
	fmt.Printf("f(5,6) = %d (ADD replaced by nothing but the callback)\n", result)
	return nil
}

// demoUnhook mirrors instrument_unhook_restore: instrument, observe the
// trap firing, unhook, and confirm subsequent calls no longer trap.
func demoUnhook() error {
	addr, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}

	calls := 0
	if err := hookcore.Instrument(addr+addEntryOffset, func(address uint64, ctx *hookcore.HookContext) {
		calls++
	}); err != nil {
		return fmt.Errorf("instrument: %w", err)
	}

	callUint32x2(addr, 1, 2)
	fmt.Printf("calls before unhook: %d\n", calls)

	if err := hookcore.Unhook(addr + addEntryOffset); err != nil {
		return fmt.Errorf("unhook: %w", err)
	}

	callUint32x2(addr, 1, 2)
	fmt.Printf("calls after unhook: %d (unchanged, trap retired)\n", calls)
	return nil
}

// demoInlineHookFar mirrors inline_hook_far: redirect a function's entry to
// a second, independently-allocated function.
func demoInlineHookFar() error {
	target, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}
	source, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}

	before := callUint32x2(source, 3, 4)
	if _, err := hookcore.InlineHook(source, target); err != nil {
		return fmt.Errorf("inline_hook: %w", err)
	}
	after := callUint32x2(source, 3, 4)
	fmt.Printf("inline_hook_far: before=%d after=%d (both call through to the same add now)\n", before, after)
	return nil
}

// demoInlineHookSignal mirrors inline_hook_signal: the callback entirely
// replaces the function body and hands back a result by mutating the
// context's return-value register directly, never touching the original
// instructions at all.
func demoInlineHookSignal() error {
	addr, err := allocateCodePage(addFuncCode)
	if err != nil {
		return err
	}

	err = hookcore.InlineHookReplace(addr, setReturnValue(42))
	if err != nil {
		return fmt.Errorf("inline_hook_replace: %w", err)
	}

	result := callUint32x2(addr, 3, 4)
	fmt.Printf("inline_hook_signal: f(3,4) = %d (function body never ran)\n", result)
	return nil
}
