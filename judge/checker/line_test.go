package checker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ref.out")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLineChecker_Accepts_Identical(t *testing.T) {
	ref := writeTemp(t, "7\n")
	c := NewLineChecker(ref)
	err := c.Check(strings.NewReader("7\n"))
	require.NoError(t, err)
}

func TestLineChecker_AbsorbsTrailingWhitespace(t *testing.T) {
	ref := writeTemp(t, "1 2 3\n4 5 6\n")
	c := NewLineChecker(ref)
	err := c.Check(strings.NewReader("1 2 3 \r\n4 5 6"))
	require.NoError(t, err)
}

func TestLineChecker_RejectsMismatch(t *testing.T) {
	ref := writeTemp(t, "7\n")
	c := NewLineChecker(ref)
	err := c.Check(strings.NewReader("8\n"))
	require.Error(t, err)
	require.True(t, IsMismatch(err))
	require.Equal(t, "Wrong answer in line 1", err.Error())
}

func TestLineChecker_RejectsExtraLine(t *testing.T) {
	ref := writeTemp(t, "7\n")
	c := NewLineChecker(ref)
	err := c.Check(strings.NewReader("7\nextra\n"))
	require.Error(t, err)
	require.True(t, IsMismatch(err))
}

func TestLineChecker_SelfCheckIsAlwaysAccepted(t *testing.T) {
	contents := "line one\nline two\n\nline four"
	ref := writeTemp(t, contents)
	c := NewLineChecker(ref)
	require.NoError(t, c.Check(strings.NewReader(contents)))
}

func TestLineChecker_Symmetric(t *testing.T) {
	a := writeTemp(t, "x\ny  \n")
	b := "x \ny\n"

	c := NewLineChecker(a)
	errAB := c.Check(strings.NewReader(b))

	bPath := writeTemp(t, b)
	c2 := NewLineChecker(bPath)
	aContents, err := os.ReadFile(a)
	require.NoError(t, err)
	errBA := c2.Check(strings.NewReader(string(aContents)))

	require.Equal(t, errAB == nil, errBA == nil)
}
