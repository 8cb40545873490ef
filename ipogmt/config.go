package ipogmt

import "runtime"

// lowerLimitFactor mirrors the original's lower_limit = thread_count * 2:
// an iteration only pays for threaded scoring once its active PC count is
// at least twice the worker count.
const lowerLimitFactor = 2

// DefaultThreadCount returns a worker count derived from the host's
// logical CPUs, leaving one core free for the calling goroutine, the way
// the original reserves a core for its main thread. Always at least 1.
func DefaultThreadCount() int {
	if n := runtime.NumCPU() - 1; n > 0 {
		return n
	}
	return 1
}

// LowerLimit returns the active-PC-count threshold at or above which an
// iteration should use threaded horizontal extension instead of calling
// into package ipog directly.
func LowerLimit(threadCount int) int {
	return threadCount * lowerLimitFactor
}
