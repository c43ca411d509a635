package checker

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// LineChecker is the line-synchronous checker described in spec.md
// §4.B: lines are compared pairwise after trimming leading/trailing
// ASCII whitespace, advancing both streams together until either
// mismatches or both reach end-of-stream at the same time.
type LineChecker struct {
	ReferencePath string
}

// NewLineChecker constructs a LineChecker reading the reference file
// at referencePath, opened lazily on Check.
func NewLineChecker(referencePath string) *LineChecker {
	return &LineChecker{ReferencePath: referencePath}
}

// Check implements Checker.
func (c *LineChecker) Check(output io.Reader) error {
	ref, err := os.Open(c.ReferencePath)
	if err != nil {
		return err
	}
	defer ref.Close()

	refReader := bufio.NewReader(ref)
	outReader := bufio.NewReader(output)

	line := 0
	for {
		line++

		refLine, refEOF, err := readLine(refReader)
		if err != nil {
			return err
		}
		outLine, outEOF, err := readLine(outReader)
		if err != nil {
			return err
		}

		if trimASCII(refLine) != trimASCII(outLine) {
			return wrongAnswer("Wrong answer in line %d", line)
		}

		if refEOF && !outEOF {
			return wrongAnswer("Wrong answer in line %d", line)
		}
		if !refEOF && outEOF {
			return wrongAnswer("Wrong answer in line %d", line)
		}
		if refEOF && outEOF {
			return nil
		}
	}
}

// readLine reads the longest byte sequence up to and including the
// next newline, or end-of-stream. The returned bool reports whether
// this read hit EOF with no bytes consumed (the "exhausted" case used
// by the EOF-race rule); a final line with content but no trailing
// newline is NOT treated as exhausted.
func readLine(r *bufio.Reader) (line string, exhausted bool, err error) {
	line, err = r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return line, line == "", nil
		}
		return "", false, err
	}
	return line, false, nil
}

func trimASCII(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
