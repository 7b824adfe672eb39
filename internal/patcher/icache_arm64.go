//go:build arm64

package patcher

/*
#include <stdint.h>
#include <stddef.h>

static void hookcore_clear_cache(uint64_t addr, size_t len) {
	char *start = (char *)(uintptr_t)addr;
	__builtin___clear_cache(start, start + len);
}
*/
import "C"

// FlushICache invalidates the instruction cache over [addr, addr+length).
// AArch64 has no coherent icache, so a real invalidation is required after
// every code write; see spec.md §4.1.
func FlushICache(addr uintptr, length int) {
	C.hookcore_clear_cache(C.uint64_t(addr), C.size_t(length))
}
