package commands

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
)

var testEnviron = []string{"HOME=/home/test", "PATH=/bin"}

// newTestShell creates a non-interactive shell reading script, with stdout
// and stderr combined into the returned buffer.
func newTestShell(t *testing.T, script string, opts Options) (*Shell, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	if opts.Name == "" {
		opts.Name = "hsh"
	}
	if opts.Argv == nil {
		opts.Argv = []string{"hsh"}
	}
	if opts.Environ == nil {
		opts.Environ = testEnviron
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewMemMapFs()
	}
	opts.Input = strings.NewReader(script)
	opts.Stdout = out
	opts.Stderr = out

	s, err := NewShell(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	return s, out
}

// runScript runs script to completion and returns the combined output and the
// final status.
func runScript(t *testing.T, script string, opts Options) (string, int) {
	t.Helper()

	s, out := newTestShell(t, script, opts)
	status := s.Run(context.Background())
	return out.String(), status
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	Script  string
	Environ []string
}

func (gts goldenTestSuite) Run(t *testing.T) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	for tn, tc := range gts {
		tn, tc := tn, tc
		t.Run(tn, func(t *testing.T) {
			out, status := runScript(t, tc.Script, Options{Environ: tc.Environ})
			out += fmt.Sprintf("status: %d\n", status)

			g.Assert(t, tn, []byte(out))
		})
	}
}
