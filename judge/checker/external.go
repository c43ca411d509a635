package checker

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/google/shlex"
)

const randNameCandidates = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randName(prefix string) string {
	s := make([]byte, 0, 8)
	for i := 0; i < 8; i++ {
		s = append(s, randNameCandidates[rand.Intn(len(randNameCandidates))])
	}
	return prefix + string(s)
}

// ExternalChecker runs an external comparison program built from a
// command template, for special judges where multiple outputs are
// valid. Ports the teacher library's ExternalJudger: got and expected
// are written to temp files and their paths substituted into the
// template.
//
// Example template: python3 compare.py "{{ .Got }}" "{{ .Expected }}"
type ExternalChecker struct {
	ReferencePath string
	TempDir       string
	command       *template.Template
}

type externalTemplateData struct {
	Got      string
	Expected string
}

// NewExternalChecker parses templ as the command template. tempDir is
// where the got/expected scratch files are written.
func NewExternalChecker(templ, referencePath, tempDir string) (*ExternalChecker, error) {
	command, err := template.New("").Parse(templ)
	if err != nil {
		return nil, err
	}
	return &ExternalChecker{
		ReferencePath: referencePath,
		TempDir:       tempDir,
		command:       command,
	}, nil
}

// Check implements Checker. The full output stream is buffered first
// since the comparison is whole-string, not line-synchronous.
func (c *ExternalChecker) Check(output io.Reader) error {
	got, err := io.ReadAll(output)
	if err != nil {
		return err
	}
	expected, err := os.ReadFile(c.ReferencePath)
	if err != nil {
		return err
	}

	gotFile := path.Join(c.TempDir, randName("spj_got_"))
	if err := os.WriteFile(gotFile, got, 0o666); err != nil {
		return err
	}
	defer os.Remove(gotFile)

	expectedFile := path.Join(c.TempDir, randName("spj_exp_"))
	if err := os.WriteFile(expectedFile, expected, 0o666); err != nil {
		return err
	}
	defer os.Remove(expectedFile)

	var buf bytes.Buffer
	if err := c.command.Execute(&buf, externalTemplateData{Got: gotFile, Expected: expectedFile}); err != nil {
		return err
	}
	args, err := shlex.Split(buf.String())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return wrongAnswer("empty checker command")
	}

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return wrongAnswer("external checker rejected the output")
		}
		return err
	}
	return nil
}
