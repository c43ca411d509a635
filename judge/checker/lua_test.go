package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLuaChecker_AcceptsWhenScriptSaysSo(t *testing.T) {
	ref := writeTemp(t, "42\n")
	c := NewLuaChecker(`function judge(got, expected) return got == expected end`, ref)
	require.NoError(t, c.Check(strings.NewReader("42\n")))
}

func TestLuaChecker_RejectsWhenScriptSaysSo(t *testing.T) {
	ref := writeTemp(t, "42\n")
	c := NewLuaChecker(`function judge(got, expected) return false end`, ref)
	err := c.Check(strings.NewReader("42\n"))
	require.Error(t, err)
	require.True(t, IsMismatch(err))
}

func TestLuaChecker_NumericTolerance(t *testing.T) {
	ref := writeTemp(t, "3.14159\n")
	script := `
function judge(got, expected)
    local g = tonumber(got)
    local e = tonumber(expected)
    if g == nil or e == nil then return false end
    local diff = g - e
    if diff < 0 then diff = -diff end
    return diff < 1e-3
end`
	c := NewLuaChecker(script, ref)
	require.NoError(t, c.Check(strings.NewReader("3.14200\n")))
}
