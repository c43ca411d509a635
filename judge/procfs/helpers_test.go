package procfs

import "sync"

// maxUnusedPid is a PID value the kernel will not have assigned.
const maxUnusedPid = 1 << 30

func resetOnce() sync.Once {
	return sync.Once{}
}
