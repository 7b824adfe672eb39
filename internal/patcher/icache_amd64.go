//go:build amd64

package patcher

// FlushICache is a no-op on x86-64: the architecture's coherent instruction
// cache means a code write is visible to subsequent fetches without an
// explicit flush. See spec.md §4.1.
func FlushICache(addr uintptr, length int) {}
