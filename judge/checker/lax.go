package checker

import (
	"io"
	"os"
	"strings"
)

// LaxChecker compares only the non-empty trimmed lines of both
// streams, ignoring blank lines entirely. Ports the teacher library's
// LaxJudge: useful for problems whose reference output carries stray
// blank lines that shouldn't fail a correct submission.
type LaxChecker struct {
	ReferencePath string
}

// NewLaxChecker constructs a LaxChecker reading the reference file at
// referencePath.
func NewLaxChecker(referencePath string) *LaxChecker {
	return &LaxChecker{ReferencePath: referencePath}
}

// Check implements Checker.
func (c *LaxChecker) Check(output io.Reader) error {
	refBytes, err := os.ReadFile(c.ReferencePath)
	if err != nil {
		return err
	}
	outBytes, err := io.ReadAll(output)
	if err != nil {
		return err
	}

	refLines := nonEmptyTrimmedLines(string(refBytes))
	outLines := nonEmptyTrimmedLines(string(outBytes))

	if len(refLines) != len(outLines) {
		return wrongAnswer("Wrong answer: expected %d non-empty lines, got %d", len(refLines), len(outLines))
	}
	for i := range refLines {
		if refLines[i] != outLines[i] {
			return wrongAnswer("Wrong answer in line %d", i+1)
		}
	}
	return nil
}

func nonEmptyTrimmedLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
