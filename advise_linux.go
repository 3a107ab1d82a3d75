//go:build linux

package fastatally

import "golang.org/x/sys/unix"

// adviseSequential hints to the kernel that the mapped buffer will be
// read sequentially so it can schedule aggressive read-ahead.
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	_ = unix.Madvise(data, unix.MADV_WILLNEED)
}
