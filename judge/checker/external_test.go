package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExternalChecker_AcceptsOnZeroExit(t *testing.T) {
	ref := writeTemp(t, "hello\n")
	c, err := NewExternalChecker(`cmp --silent "{{ .Got }}" "{{ .Expected }}"`, ref, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.Check(strings.NewReader("hello\n")))
}

func TestExternalChecker_RejectsOnNonZeroExit(t *testing.T) {
	ref := writeTemp(t, "hello\n")
	c, err := NewExternalChecker(`cmp --silent "{{ .Got }}" "{{ .Expected }}"`, ref, t.TempDir())
	require.NoError(t, err)
	err = c.Check(strings.NewReader("goodbye\n"))
	require.Error(t, err)
	require.True(t, IsMismatch(err))
}
