//go:build amd64

package main

import "github.com/xyproto/hookcore"

// mulOpcode returns the replacement Patchcode writes over the LEA at
// addEntryOffset: LEA RAX,[RDI+RSI*2] (a+2b) in place of LEA RAX,[RDI+RSI]
// (a+b). x86-64 has no single 4-byte reg-reg-into-fresh-register multiply
// the way AArch64's MUL Wd,Wn,Wm does, so the x86-64 demo swaps the scale
// factor instead; the point being demonstrated is Patchcode rewriting a
// running instruction in place, not literally multiplication.
func mulOpcode() uint32 {
	return leaScaleTwoOpcode
}

// setReturnValue builds a callback that sets RAX, the SysV return
// register, directly, used by the inline_hook_signal-style demo where the
// callback fully replaces the function body.
func setReturnValue(v uint32) hookcore.InstrumentCallback {
	return func(address uint64, ctx *hookcore.HookContext) {
		ctx.RAX = uint64(v)
	}
}

// addFuncCode is a tiny SysV function: LEA RAX,[RDI+RSI]; RET. A single
// 4-byte instruction computes a+b directly and returns it in RAX, the same
// shape as the AArch64 demo's single-instruction ADD W0,W0,W1, and, at
// exactly 4 bytes, the minimum width Patchcode requires on x86-64 with no
// NOP padding needed.
var addFuncCode = []byte{
	0x48, 0x8D, 0x04, 0x37, // LEA RAX, [RDI+RSI]
	0xC3, // RET
}

// leaScaleTwoOpcode, read as a little-endian uint32, is LEA RAX,[RDI+RSI*2]
// (a+2b): same instruction shape and width as addFuncCode's LEA, only the
// SIB scale field differs.
const leaScaleTwoOpcode uint32 = 0x77048D48

// addEntryOffset is the byte offset of the LEA instruction from the
// function's start; on x86-64, as on AArch64, it is the function entry
// itself.
const addEntryOffset = 0

// x86-64 has no RIP-relative-by-page instruction equivalent to AArch64's
// ADRP; the adrp demo is AArch64-only (see demoADRP).
