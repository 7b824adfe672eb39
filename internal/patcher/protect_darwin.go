//go:build darwin

package patcher

/*
#include <mach/mach.h>
#include <mach/mach_vm.h>

static kern_return_t hookcore_protect(mach_vm_address_t addr, mach_vm_size_t size, vm_prot_t prot) {
	return mach_vm_protect(mach_task_self(), addr, size, 0, prot);
}
*/
import "C"

import (
	"github.com/xyproto/hookcore/internal/herr"
)

const vmProtCopy = 0x10 // VM_PROT_COPY: request copy-on-write semantics for the writable transition

// makeWritable relaxes protection to read+write+copy, matching spec.md §4.1's
// Darwin mach_vm_protect path. The copy-on-write hint keeps shared text
// pages private to this process instead of mutating the backing file.
func makeWritable(start uintptr, length int) error {
	kr := C.hookcore_protect(C.mach_vm_address_t(start), C.mach_vm_size_t(length), C.VM_PROT_READ|C.VM_PROT_WRITE|vmProtCopy)
	if kr != 0 {
		return herr.WithKernReturn(herr.ErrProtectWritableFailed, int(kr), lastErrno())
	}
	return nil
}

// makeExecutable restores protection to read+execute.
func makeExecutable(start uintptr, length int) error {
	kr := C.hookcore_protect(C.mach_vm_address_t(start), C.mach_vm_size_t(length), C.VM_PROT_READ|C.VM_PROT_EXECUTE)
	if kr != 0 {
		return herr.WithKernReturn(herr.ErrProtectExecutableFailed, int(kr), lastErrno())
	}
	return nil
}
