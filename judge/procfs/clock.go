package procfs

import (
	"os"
	"strconv"
	"sync"
)

// defaultClockTicksPerSec is the value POSIX systems almost always
// report for sysconf(_SC_CLK_TCK). Calling sysconf itself requires
// cgo, which this codebase avoids like the rest of the pack; CLK_TCK
// is kept as a test-only override in the style of the ja7ad/consumption
// ClockTicks helper.
const defaultClockTicksPerSec = 100

var (
	clockTicksOnce  sync.Once
	clockTicksCache int
)

// ClockTicksPerSec returns the system clock-tick rate, fetched once
// and cached per spec.md §9 ("Global state"). Overridable via the
// CLK_TCK environment variable for hermetic tests.
func ClockTicksPerSec() int {
	clockTicksOnce.Do(func() {
		clockTicksCache = defaultClockTicksPerSec
		if v, err := strconv.Atoi(os.Getenv("CLK_TCK")); err == nil && v > 0 {
			clockTicksCache = v
		}
	})
	return clockTicksCache
}
