package trap

import "golang.org/x/sys/unix"

const (
	sigtrap = int(unix.SIGTRAP)
	sigill  = int(unix.SIGILL)
)
