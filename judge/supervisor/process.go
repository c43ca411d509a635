// Package supervisor implements component D of the judge runtime: it
// spawns a child, feeds it input on stdin, samples its live resource
// consumption from procfs, enforces time/memory/idle limits, reaps
// the child via wait4, and reconciles final resource totals from the
// kernel's rusage accounting. Ports the teacher library's runner.go
// minus its ptrace/seccomp sandboxing layer (no sandboxing is an
// explicit Non-goal here).
package supervisor

import (
	"errors"
	"log/slog"

	"oj-judge/judge"
	"oj-judge/judge/procfs"
)

// stateKind tags the internal state machine of a supervised process.
// It transitions exactly once from running to a terminal kind.
type stateKind uint8

const (
	stateRunning stateKind = iota
	stateExited
	stateTimeLimitExceeded
	stateMemoryLimitExceeded
	stateIdleLimitExceeded
	stateRuntimeError
	stateFailed
)

// processState is the terminal (or running) state of a supervised
// process. Code carries the exit code when Kind == stateExited, or
// the terminating/stopping signal when Kind == stateRuntimeError.
type processState struct {
	kind stateKind
	code int
}

// process is the internal bookkeeping for one supervision session,
// mirroring spec.md §3's "Supervised Process".
type process struct {
	pid              int
	limits           judge.Limits
	consumedTimeMs   uint64
	consumedMemoryMB uint64
	idleCount        uint32
	state            processState
}

func newProcess(pid int, limits judge.Limits) *process {
	return &process{pid: pid, limits: limits, state: processState{kind: stateRunning}}
}

// refreshFromProbe updates the high-water marks from a best-effort
// live procfs sample, and the idle counter from whether CPU time
// advanced since the previous sample. Monotonicity is preserved by
// taking the max with the prior value (spec.md §4.D step 2).
func (p *process) refreshFromProbe(cpuMs, memMB uint64) {
	if cpuMs == p.consumedTimeMs {
		p.idleCount++
	} else {
		p.idleCount = 0
	}
	if cpuMs > p.consumedTimeMs {
		p.consumedTimeMs = cpuMs
	}
	if memMB > p.consumedMemoryMB {
		p.consumedMemoryMB = memMB
	}
}

// reconcileFromRusage folds the kernel's authoritative accounting
// (returned by wait4 at reap) into the high-water marks. This is the
// only source of truth for children that exit before any procfs
// sample lands.
func (p *process) reconcileFromRusage(cpuMs, memMB uint64) {
	if cpuMs > p.consumedTimeMs {
		p.consumedTimeMs = cpuMs
	}
	if memMB > p.consumedMemoryMB {
		p.consumedMemoryMB = memMB
	}
}

// isIdle implements the idleness definition of spec.md §4.D: either
// more than 100 consecutive samples without CPU progress, or wall
// time has badly diverged from the CPU budget (alive but not
// consuming CPU — e.g. blocked on input that was never supplied).
func (p *process) isIdle(elapsedWallMs uint64) bool {
	if p.idleCount > 100 {
		return true
	}
	return elapsedWallMs > 5000 && elapsedWallMs > 10*p.limits.TimeLimitMs
}

// exceedsTime reports whether the time limit is enabled and breached.
func (p *process) exceedsTime() bool {
	return !p.limits.TimeUnbounded() && p.consumedTimeMs > p.limits.TimeLimitMs
}

// exceedsMemory reports whether the memory limit is enabled and breached.
func (p *process) exceedsMemory() bool {
	return !p.limits.MemoryUnbounded() && p.consumedMemoryMB > p.limits.MemoryLimitMB
}

// sampleOnce takes one live procfs sample for the process's pid. A
// vanished /proc entry (the benign race described in spec.md §9) is
// treated as "no update this tick", not an error. Any other probe
// failure is still a miss, not a session failure, but is unexpected
// enough to warrant a warning log.
func sampleOnce(pid int) (cpuMs, memMB uint64, ok bool) {
	cpuMs, err := procfs.ReadCPUTimeMs(pid)
	if err != nil {
		logProbeMiss("cpu", pid, err)
		return 0, 0, false
	}
	memMB, err = procfs.ReadPeakMemoryMB(pid)
	if err != nil {
		logProbeMiss("memory", pid, err)
		return cpuMs, 0, true
	}
	return cpuMs, memMB, true
}

func logProbeMiss(probe string, pid int, err error) {
	if errors.Is(err, procfs.ErrVanished) {
		return
	}
	slog.Warn("procfs probe missed a sample", "probe", probe, "pid", pid, "err", err)
}
