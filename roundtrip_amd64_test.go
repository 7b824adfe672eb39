//go:build amd64

package hookcore

import "testing"

// TestPatchcodeTooLong covers spec.md §4.5's PatchTooLong failure mode: a
// decoded instruction narrower than 4 bytes can't hold a new_opcode write
// without clobbering whatever follows it in the instruction stream.
func TestPatchcodeTooLong(t *testing.T) {
	addr := allocateExecPage(t, testShortInsnCode)

	_, err := Patchcode(addr, 0xDEAD_BEEF)
	if err == nil {
		t.Fatalf("Patchcode on a 1-byte instruction succeeded, want ErrPatchTooLong")
	}
	if !IsErrorKind(err, ErrPatchTooLong) {
		t.Fatalf("Patchcode error = %v, want ErrPatchTooLong", err)
	}
}
