// Package trampoline synthesizes small executable stubs that replay an
// original instruction and jump back into the patched function.
package trampoline

import (
	"unsafe"

	"github.com/xyproto/hookcore/internal/herr"
	"golang.org/x/sys/unix"
)

// allocatePage maps one page of anonymous, private, initially read-write
// memory, mirroring the teacher's own AllocateExecutablePage shape
// (hotreload_unix.go) generalized to golang.org/x/sys/unix.
func allocatePage(size int) (uintptr, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, herr.WithErrno(herr.ErrMmapFailed, int(err.(unix.Errno)))
	}
	return uintptr(unsafe.Pointer(&mem[0])), nil
}

func protectExecutable(base uintptr, size int) error {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(base)), size)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return herr.WithErrno(herr.ErrTrampolineProtectFailed, int(err.(unix.Errno)))
	}
	return nil
}

func writeBytes(base uintptr, offset int, data []byte) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(base+uintptr(offset))), len(data))
	copy(dst, data)
}
