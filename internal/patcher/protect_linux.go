//go:build linux

package patcher

import (
	"unsafe"

	"github.com/xyproto/hookcore/internal/herr"
	"golang.org/x/sys/unix"
)

// makeWritable relaxes protection on [start, start+length) to
// read+write+exec. The executable bit stays set throughout the transition:
// another thread may be executing inside the same page while this one
// writes to it.
func makeWritable(start uintptr, length int) error {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(start)), length)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC); err != nil {
		return herr.WithErrno(herr.ErrProtectWritableFailed, int(err.(unix.Errno)))
	}
	return nil
}

// makeExecutable restores [start, start+length) to read+exec only.
func makeExecutable(start uintptr, length int) error {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(start)), length)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return herr.WithErrno(herr.ErrProtectExecutableFailed, int(err.(unix.Errno)))
	}
	return nil
}
