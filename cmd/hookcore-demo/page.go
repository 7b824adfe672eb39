package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocateCodePage maps one page of anonymous memory, writes code at its
// start, and leaves it read+execute so hookcore's own patchers have
// somewhere real to operate on. Mirrors the teacher's own
// AllocateExecutablePage shape (hotreload_unix.go), generalized to
// golang.org/x/sys/unix instead of raw syscall numbers.
func allocateCodePage(code []byte) (uint64, error) {
	size := unix.Getpagesize()
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, fmt.Errorf("mmap: %w", err)
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return 0, fmt.Errorf("mprotect: %w", err)
	}
	return uint64(uintptr(unsafe.Pointer(&mem[0]))), nil
}
