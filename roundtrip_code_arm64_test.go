//go:build arm64

package hookcore

// testFuncCode is ADD W0, W0, W1; RET, the same shape
// cmd/hookcore-demo's patchcode example uses.
var testFuncCode = []byte{
	0x00, 0x00, 0x01, 0x0B, // ADD W0, W0, W1
	0xC0, 0x03, 0x5F, 0xD6, // RET
}

const testEntryOffset = 0

// testReplacementOpcode is MUL W0, W0, W1 (MADD W0,W0,W1,WZR), the same
// 4-byte width as the ADD it replaces.
const testReplacementOpcode uint32 = 0x1B017C00
