// Package batch implements component E: a single sequential judging
// session over a directory of test cases. It adapts the teacher
// library's Task/Subscribe progress-notification idiom (engine.go) to
// a sequential driver — there is no worker pool or job queue here, as
// parallel judging of one submission's cases is an explicit Non-goal.
package batch

import (
	"fmt"
	"sync"
	"time"

	"oj-judge/judge"
	"oj-judge/judge/checker"
	"oj-judge/judge/supervisor"
)

// CheckerFactory builds the checker to run against one test case's
// reference output. It is a factory, not a single Checker instance,
// because each test case has its own reference file.
type CheckerFactory func(tc judge.TestCase) checker.Checker

// Input bundles everything one batch run needs.
type Input struct {
	TestDir    string
	Executable string
	Args       []string
	Limits     judge.Limits
	NewChecker CheckerFactory
}

// Progress is the snapshot handed to a subscribed listener just before
// a test case is judged, mirroring the teacher's Task.update
// notification shape. It carries no verdict — that isn't known yet.
type Progress struct {
	TestCase uint32
	Total    int
	Updated  time.Time
}

// Result is the final outcome of a batch run: the verdict of the
// first failing case (or the last Accepted one if every case passed),
// the case number it was produced on, and the worst-case resource
// usage observed across all Accepted cases (spec.md §5).
type Result struct {
	Verdict      judge.Verdict
	TestCase     uint32
	MaxTimeMs    uint64
	MaxMemoryMB  uint64
	CasesChecked int
}

// Session runs one submission's test cases to completion, sequentially,
// stopping at the first non-Accepted verdict. A Session is single-use.
type Session struct {
	lock     sync.Mutex
	listener func(Progress)
}

// NewSession constructs an idle Session.
func NewSession() *Session {
	return &Session{}
}

// Subscribe registers a listener invoked just before each test case is
// judged, with a progress snapshot. Mirrors Task.Subscribe in the teacher library.
func (s *Session) Subscribe(listener func(Progress)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.listener = listener
}

func (s *Session) notify(p Progress) {
	s.lock.Lock()
	l := s.listener
	s.lock.Unlock()
	if l != nil {
		l(p)
	}
}

// Run discovers the test cases in input.TestDir and judges them in
// ascending case-number order, stopping at the first test case whose
// verdict is not Accepted (spec.md §5 "Batch Evaluation"). The worst
// case time/memory usage across all Accepted cases is tracked and
// returned regardless of where judging stops.
func (s *Session) Run(input Input) (Result, error) {
	cases, err := judge.DiscoverTestCases(input.TestDir)
	if err != nil {
		return Result{}, fmt.Errorf("batch: discovering test cases: %w", err)
	}

	var result Result
	for _, tc := range cases {
		s.notify(Progress{
			TestCase: tc.Number,
			Total:    len(cases),
			Updated:  time.Now(),
		})

		verdict, err := supervisor.Supervise(supervisor.Input{
			Executable:    input.Executable,
			Args:          input.Args,
			StdinFilePath: tc.InputPath,
			Limits:        input.Limits,
			Checker:       input.NewChecker(tc),
		})
		if err != nil {
			return Result{}, fmt.Errorf("batch: test case %d: %w", tc.Number, err)
		}

		result.CasesChecked++
		result.Verdict = verdict
		result.TestCase = tc.Number
		if verdict.Kind == judge.Accepted {
			if verdict.TimeMs > result.MaxTimeMs {
				result.MaxTimeMs = verdict.TimeMs
			}
			if verdict.MemMB > result.MaxMemoryMB {
				result.MaxMemoryMB = verdict.MemMB
			}
		}

		if verdict.Kind != judge.Accepted {
			return result, nil
		}
	}

	return result, nil
}
