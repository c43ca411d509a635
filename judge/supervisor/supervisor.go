package supervisor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"oj-judge/judge"
	"oj-judge/judge/checker"
)

// ErrUnexpectedState is returned when the supervised process ends up
// in a state the verdict mapping doesn't cover (spec.md §4.D step 6).
var ErrUnexpectedState = errors.New("supervisor: an unexpected error occurred")

// Input bundles everything Supervise needs for one session: the
// executable, its optional argv (argv[0] is always the executable
// itself — no arbitrary-argument invocation beyond this fixed shape,
// per the Non-goals), the stdin file to feed it, resource limits, and
// the checker to run against its stdout on a clean exit.
type Input struct {
	Executable    string
	Args          []string
	StdinFilePath string
	Limits        judge.Limits
	Checker       checker.Checker
}

// Supervise runs one child to completion under supervision and
// returns its verdict. It never returns a WrongAnswer/TLE/MLE/etc as
// an error — those are Verdict values; the error return is reserved
// for infrastructure failures (spec.md §7).
func Supervise(input Input) (judge.Verdict, error) {
	stdin, err := os.ReadFile(input.StdinFilePath)
	if err != nil {
		return judge.Verdict{}, fmt.Errorf("supervisor: reading input file: %w", err)
	}

	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		return judge.Verdict{}, fmt.Errorf("supervisor: creating stdin pipe: %w", err)
	}
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		stdinR.Close()
		stdinW.Close()
		return judge.Verdict{}, fmt.Errorf("supervisor: creating stdout pipe: %w", err)
	}

	argv := make([]string, 0, len(input.Args)+1)
	argv = append(argv, input.Executable)
	argv = append(argv, input.Args...)

	proc, err := os.StartProcess(input.Executable, argv, &os.ProcAttr{
		Files: []*os.File{stdinR, stdoutW, os.Stderr},
	})
	stdinR.Close()
	stdoutW.Close()
	if err != nil {
		stdinW.Close()
		stdoutR.Close()
		return judge.Verdict{}, fmt.Errorf("supervisor: spawning child: %w", err)
	}
	defer stdoutR.Close()

	// The child's stdin must be fully written before sampling begins
	// (spec.md §3 invariant); input is assumed small (at most a few
	// MiB) so a blocking write is acceptable. A short write because
	// the child closed its end early (EPIPE) is not an infrastructure
	// failure — the child's own exit status decides the verdict below.
	_, _ = stdinW.Write(stdin)
	stdinW.Close()

	p := newProcess(proc.Pid, input.Limits)
	runLoop(p)

	switch p.state.kind {
	case stateExited:
		if p.state.code == 0 {
			return checkOutput(stdoutR, input.Checker, p.consumedTimeMs, p.consumedMemoryMB)
		}
		// Preserves the compatibility quirk: a non-zero normal exit
		// is reported with signal 0, not the exit code.
		return judge.RuntimeErrorVerdict(0), nil
	case stateTimeLimitExceeded:
		return judge.Verdict{Kind: judge.TimeLimitExceeded}, nil
	case stateMemoryLimitExceeded:
		return judge.Verdict{Kind: judge.MemoryLimitExceeded}, nil
	case stateIdleLimitExceeded:
		return judge.Verdict{Kind: judge.IdleLimitExceeded}, nil
	case stateRuntimeError:
		return judge.RuntimeErrorVerdict(p.state.code), nil
	default:
		return judge.Verdict{}, ErrUnexpectedState
	}
}

func checkOutput(stdout io.Reader, chk checker.Checker, timeMs, memMB uint64) (judge.Verdict, error) {
	err := chk.Check(stdout)
	if err == nil {
		return judge.AcceptedVerdict(timeMs, memMB), nil
	}
	if checker.IsMismatch(err) {
		return judge.WrongAnswerVerdict(err.Error()), nil
	}
	return judge.Verdict{}, fmt.Errorf("supervisor: checker failed: %w", err)
}

// runLoop implements the sampling/enforcement loop of spec.md §4.D:
// alternate non-blocking reaping with active sampling, at an adaptive
// cadence, until the child is reaped or a limit is violated.
func runLoop(p *process) {
	start := time.Now()
	iteration := 0

	for p.state.kind == stateRunning {
		iteration++

		var status unix.WaitStatus
		var usage unix.Rusage
		wpid, err := unix.Wait4(p.pid, &status, unix.WNOHANG|unix.WUNTRACED|unix.WCONTINUED, &usage)

		switch {
		case err == nil && wpid == 0:
			// Still running: refresh high-water marks, check limits in
			// order time -> memory -> idle, then sleep at an adaptive
			// cadence.
			if cpuMs, memMB, ok := sampleOnce(p.pid); ok {
				p.refreshFromProbe(cpuMs, memMB)
			}

			if p.exceedsTime() {
				terminate(p, stateTimeLimitExceeded, 0)
				return
			}
			if p.exceedsMemory() {
				terminate(p, stateMemoryLimitExceeded, 0)
				return
			}
			elapsed := uint64(time.Since(start).Milliseconds())
			if p.isIdle(elapsed) {
				terminate(p, stateIdleLimitExceeded, 0)
				return
			}

			sleepMs := iteration * 100
			if sleepMs > 1000 {
				sleepMs = 1000
			}
			time.Sleep(time.Duration(sleepMs) * time.Millisecond)

		case err == nil && wpid == p.pid:
			reconcileRusage(p, &usage)

			// A program may have exited normally while already over
			// budget; that must still surface as TLE/MLE (spec.md §4.D
			// step 3).
			if p.exceedsTime() {
				p.state = processState{kind: stateTimeLimitExceeded}
				return
			}
			if p.exceedsMemory() {
				p.state = processState{kind: stateMemoryLimitExceeded}
				return
			}

			switch {
			case status.Stopped():
				p.state = processState{kind: stateRuntimeError, code: int(status.StopSignal())}
			case status.Signaled():
				p.state = processState{kind: stateRuntimeError, code: int(status.Signal())}
			case status.Exited():
				p.state = processState{kind: stateExited, code: status.ExitStatus()}
			default:
				p.state = processState{kind: stateFailed}
			}
			return

		default:
			// err != nil (including ECHILD), or an unrecognized wpid:
			// spec.md §4.D steps 4-5 both map to Failed.
			p.state = processState{kind: stateFailed}
			return
		}
	}
}

func reconcileRusage(p *process, usage *unix.Rusage) {
	cpuMs := uint64(usage.Utime.Sec)*1000 + uint64(usage.Utime.Usec)/1000 +
		uint64(usage.Stime.Sec)*1000 + uint64(usage.Stime.Usec)/1000
	memMB := uint64(usage.Maxrss) / 1024
	p.reconcileFromRusage(cpuMs, memMB)
}

// terminate sends a hard-kill to the child, reaps it (blocking, per
// the tightened behavior spec.md §9 calls for), and sets the final
// state. If the signal itself fails to deliver, the session is
// demoted to Failed and returns without reaping the child, matching the reference's "failed kill -> Failed"
// propagation policy (spec.md §7).
func terminate(p *process, kind stateKind, code int) {
	if err := unix.Kill(p.pid, unix.SIGKILL); err != nil {
		p.state = processState{kind: stateFailed}
		return
	}

	var status unix.WaitStatus
	var usage unix.Rusage
	for {
		wpid, err := unix.Wait4(p.pid, &status, 0, &usage)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			break
		}
		if wpid == p.pid {
			break
		}
	}

	p.state = processState{kind: kind, code: code}
}
