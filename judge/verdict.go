// Package judge defines the verdict and limit types shared by the
// checker, supervisor, and batch driver.
package judge

import "fmt"

// VerdictKind tags the outcome of a single supervised run.
type VerdictKind uint8

const (
	Accepted VerdictKind = iota
	WrongAnswer
	TimeLimitExceeded
	MemoryLimitExceeded
	IdleLimitExceeded
	RuntimeError
)

// Ident returns the wire identifier used as the JSON object key for
// tagged serialization, e.g. "Accepted", "RuntimeError".
func (k VerdictKind) Ident() string {
	switch k {
	case Accepted:
		return "Accepted"
	case WrongAnswer:
		return "WrongAnswer"
	case TimeLimitExceeded:
		return "TimeLimitExceeded"
	case MemoryLimitExceeded:
		return "MemoryLimitExceeded"
	case IdleLimitExceeded:
		return "IdleLimitExceeded"
	case RuntimeError:
		return "RuntimeError"
	}
	panic("judge: unhandled VerdictKind")
}

// String returns a human-readable label for debug printing.
func (k VerdictKind) String() string {
	switch k {
	case Accepted:
		return "Accepted"
	case WrongAnswer:
		return "Wrong Answer"
	case TimeLimitExceeded:
		return "Time Limit Exceeded"
	case MemoryLimitExceeded:
		return "Memory Limit Exceeded"
	case IdleLimitExceeded:
		return "Idle Limit Exceeded"
	case RuntimeError:
		return "Runtime Error"
	}
	panic("judge: unhandled VerdictKind")
}

// Verdict is the tagged outcome of judging one test case. Exactly one
// of the payload fields is meaningful, selected by Kind: TimeMs/MemMB
// for Accepted, Msg for WrongAnswer, Signal for RuntimeError.
type Verdict struct {
	Kind   VerdictKind
	TimeMs uint64
	MemMB  uint64
	Msg    string
	Signal int
}

// AcceptedVerdict builds an Accepted verdict carrying resource usage.
func AcceptedVerdict(timeMs, memMB uint64) Verdict {
	return Verdict{Kind: Accepted, TimeMs: timeMs, MemMB: memMB}
}

// WrongAnswerVerdict builds a WrongAnswer verdict carrying the
// checker's diagnostic message.
func WrongAnswerVerdict(msg string) Verdict {
	return Verdict{Kind: WrongAnswer, Msg: msg}
}

// RuntimeErrorVerdict builds a RuntimeError verdict. Per the
// compatibility quirk preserved from the original implementation, a
// non-zero *normal* exit is reported with Signal == 0, not the exit
// code; only a real terminating signal is carried through.
func RuntimeErrorVerdict(signal int) Verdict {
	return Verdict{Kind: RuntimeError, Signal: signal}
}

// String renders a stable debug-like form, e.g. what the CLI prints.
func (v Verdict) String() string {
	switch v.Kind {
	case Accepted:
		return fmt.Sprintf("Accepted { time: %dms, memory: %dMB }", v.TimeMs, v.MemMB)
	case WrongAnswer:
		return fmt.Sprintf("WrongAnswer { msg: %q }", v.Msg)
	case RuntimeError:
		return fmt.Sprintf("RuntimeError(%d)", v.Signal)
	default:
		return v.Kind.String()
	}
}
