//go:build !linux

package fastatally

// adviseSequential is a no-op on non-Linux platforms.
// madvise read-ahead hints are Linux-specific here.
func adviseSequential(data []byte) {
	// No-op
}
