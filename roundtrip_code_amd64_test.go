//go:build amd64

package hookcore

// testFuncCode is LEA RAX,[RDI+RSI]; RET: a single 4-byte instruction
// computing a+b, the same shape cmd/hookcore-demo's patchcode example uses.
var testFuncCode = []byte{
	0x48, 0x8D, 0x04, 0x37, // LEA RAX, [RDI+RSI]
	0xC3, // RET
}

const testEntryOffset = 0

// testReplacementOpcode, read little-endian, is LEA RAX,[RDI+RSI*2]: same
// instruction shape and width, only the SIB scale field differs.
const testReplacementOpcode uint32 = 0x77048D48

// testShortInsnCode is a single 1-byte RET: deliberately narrower than 4
// bytes, so Patchcode must fail with ErrPatchTooLong rather than clobber
// whatever follows it in the page.
var testShortInsnCode = []byte{0xC3}
