//go:build arm64

package main

import "github.com/xyproto/hookcore"

// mulOpcode returns the MUL replacement Patchcode writes over the ADD.
func mulOpcode() uint32 {
	return mulInstruction
}

// setReturnValue builds a callback that sets the AAPCS64 return register
// (X0/W0) directly, used by the inline_hook_signal-style demo where the
// callback fully replaces the function body.
func setReturnValue(v uint32) hookcore.InstrumentCallback {
	return func(address uint64, ctx *hookcore.HookContext) {
		ctx.SetReg(0, uint64(v))
	}
}

// addFuncCode is a tiny AAPCS64 function: ADD W0, W0, W1; RET. It computes
// its two 32-bit arguments' sum and returns it in W0, exactly the shape
// patchcode_add_to_mul patches into a multiply.
var addFuncCode = []byte{
	0x00, 0x00, 0x01, 0x0B, // ADD W0, W0, W1
	0xC0, 0x03, 0x5F, 0xD6, // RET
}

// mulInstruction is MUL W0, W0, W1 (MADD W0,W0,W1,WZR), the same 4-byte
// width as the ADD it replaces so Patchcode needs no NOP padding.
const mulInstruction uint32 = 0x1B017C00

// addEntryOffset is the byte offset of the ADD instruction from the
// function's start; on AArch64 it is the function entry itself.
const addEntryOffset = 0

// adrpFuncCode: ADRP X0, #0; RET. The ADRP result is PC-relative, so
// instrumenting it requires InstrumentNoOriginal plus manual emulation
// (see demoADRP).
var adrpFuncCode = []byte{
	0x00, 0x00, 0x00, 0x90, // ADRP X0, #0
	0xC0, 0x03, 0x5F, 0xD6, // RET
}

const adrpEntryOffset = 0
