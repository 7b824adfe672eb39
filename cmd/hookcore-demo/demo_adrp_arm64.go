//go:build arm64

package main

import (
	"fmt"

	"github.com/xyproto/hookcore"
)

// demoADRP mirrors instrument_adrp_no_original: ADRP's result depends on
// the page the instruction itself executes from, which Instrument's
// trampoline-replay can't account for portably, so the convention is
// InstrumentNoOriginal plus manual emulation of what ADRP would have
// computed, using the trapped PC from the callback's own context.
func demoADRP() error {
	addr, err := allocateCodePage(adrpFuncCode)
	if err != nil {
		return err
	}

	err = hookcore.InstrumentNoOriginal(addr+adrpEntryOffset, func(address uint64, ctx *hookcore.HookContext) {
		const pageMask = ^uint64(0xFFF)
		page := address & pageMask // ADRP X0, #0: label offset is 0
		ctx.SetReg(0, page)
		fmt.Printf("adrp: emulated ADRP X0,#0 at %#x -> X0=%#x\n", address, page)
	})
	if err != nil {
		return fmt.Errorf("instrument_no_original: %w", err)
	}

	callUint32x2(addr, 0, 0)
	return nil
}
