package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaxChecker_IgnoresBlankLines(t *testing.T) {
	ref := writeTemp(t, "a\n\nb\n\n\nc\n")
	c := NewLaxChecker(ref)
	require.NoError(t, c.Check(strings.NewReader("a\nb\nc\n")))
}

func TestLaxChecker_RejectsContentMismatch(t *testing.T) {
	ref := writeTemp(t, "a\nb\n")
	c := NewLaxChecker(ref)
	err := c.Check(strings.NewReader("a\nc\n"))
	require.Error(t, err)
	require.True(t, IsMismatch(err))
}
