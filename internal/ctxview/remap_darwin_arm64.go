//go:build darwin && arm64

package ctxview

import "unsafe"

// FromKernelContext reinterprets the kernel's __darwin_arm_thread_state64
// buffer as a *Context without copying, since Context's layout is declared
// bit-identical to it. The returned writeback is a no-op: edits the
// callback makes land directly in the kernel buffer the dispatcher resumes
// from.
func FromKernelContext(threadState unsafe.Pointer) (ctx *Context, writeback func()) {
	return (*Context)(threadState), func() {}
}
