package supervisor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oj-judge/judge"
	"oj-judge/judge/checker"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

func TestSupervise_Accepted(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "3 4\n")
	ref := writeFile(t, dir, "1.out", "7\n")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "read a b; echo $((a+b))"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 1000, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.Accepted, verdict.Kind)
}

func TestSupervise_WrongAnswer(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "3 4\n")
	ref := writeFile(t, dir, "1.out", "7\n")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "echo 8"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 1000, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.WrongAnswer, verdict.Kind)
	require.Equal(t, "Wrong answer in line 1", verdict.Msg)
}

func TestSupervise_TimeLimitExceeded(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "")
	ref := writeFile(t, dir, "1.out", "")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "while true; do :; done"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 300, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.TimeLimitExceeded, verdict.Kind)
}

func TestSupervise_RuntimeErrorViaSignal(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "")
	ref := writeFile(t, dir, "1.out", "")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "kill -SEGV $$"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 1000, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.RuntimeError, verdict.Kind)
	require.NotZero(t, verdict.Signal)
}

func TestSupervise_NonZeroExitReportsSignalZero(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "")
	ref := writeFile(t, dir, "1.out", "")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "exit 3"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 1000, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.RuntimeError, verdict.Kind)
	require.Zero(t, verdict.Signal)
}

func TestSupervise_ZeroTimeLimitDisablesEnforcement(t *testing.T) {
	dir := t.TempDir()
	stdin := writeFile(t, dir, "1.in", "")
	ref := writeFile(t, dir, "1.out", "ok\n")

	verdict, err := Supervise(Input{
		Executable:    "/bin/sh",
		Args:          []string{"-c", "sleep 1; echo ok"},
		StdinFilePath: stdin,
		Limits:        judge.Limits{TimeLimitMs: 0, MemoryLimitMB: 128},
		Checker:       checker.NewLineChecker(ref),
	})
	require.NoError(t, err)
	require.Equal(t, judge.Accepted, verdict.Kind)
}
