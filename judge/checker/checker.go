// Package checker compares a supervised program's standard output
// against a reference answer and reports pass/fail with a diagnostic.
//
// Checker is polymorphic over a single capability (compare against a
// stream); the supervisor never needs to know which variant it holds.
// LineChecker implements the spec's contract exactly; LaxChecker,
// ExternalChecker, and LuaChecker are additional variants that plug in
// without any change to the supervisor.
package checker

import "io"

// Checker compares a program's output stream against a reference and
// returns nil on a match, or an error describing the mismatch.
//
// An error returned because the underlying streams could not be read
// (not because the content differs) is an infrastructure failure, not
// a verdict — callers must not interpret every non-nil error as
// WrongAnswer; see each implementation's doc comment.
type Checker interface {
	Check(output io.Reader) error
}
