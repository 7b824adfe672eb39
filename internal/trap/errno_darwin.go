//go:build darwin

package trap

/*
#include <errno.h>
*/
import "C"

// lastErrno reads the calling thread's errno.
func lastErrno() int {
	return int(C.errno)
}
