//go:build darwin

package patcher

/*
#include <errno.h>
*/
import "C"

// lastErrno reads the calling thread's errno, mirroring libc::__error().
func lastErrno() int {
	return int(C.errno)
}
