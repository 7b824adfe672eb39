//go:build linux || darwin

package patcher

import (
	"github.com/xyproto/hookcore/internal/herr"
	"golang.org/x/sys/unix"
)

// PageSize returns the process's page size, failing with
// ErrPageSizeUnavailable the way sysconf(_SC_PAGESIZE) can.
func PageSize() (int, error) {
	size := unix.Getpagesize()
	if size <= 0 {
		return 0, herr.New(herr.ErrPageSizeUnavailable)
	}
	return size, nil
}
