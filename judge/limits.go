package judge

// Limits bounds a supervised run. A value of 0 for either dimension
// means unbounded and disables that dimension's enforcement.
type Limits struct {
	TimeLimitMs   uint64
	MemoryLimitMB uint64
}

// TimeUnbounded reports whether time enforcement is disabled.
func (l Limits) TimeUnbounded() bool { return l.TimeLimitMs == 0 }

// MemoryUnbounded reports whether memory enforcement is disabled.
func (l Limits) MemoryUnbounded() bool { return l.MemoryLimitMB == 0 }
