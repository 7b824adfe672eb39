package hookcore

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocateExecPage maps one page of anonymous memory, writes code at its
// start, and leaves it read+execute, the same shape cmd/hookcore-demo
// uses to give hookcore's patchers somewhere real to operate on.
func allocateExecPage(t *testing.T, code []byte) uint64 {
	t.Helper()

	size := unix.Getpagesize()
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		t.Fatalf("mmap: %v", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		t.Fatalf("mprotect: %v", err)
	}
	t.Cleanup(func() {
		_ = unix.Munmap(mem)
	})

	return uint64(uintptr(unsafe.Pointer(&mem[0])))
}
