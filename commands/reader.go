package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// ErrInterrupt is returned by a LineReader when the user cancels the line.
var ErrInterrupt = readline.ErrInterrupt

// LineReader reads the shell's input one line at a time. It returns io.EOF
// when the input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type terminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader reads lines from an interactive terminal with line
// editing.
func NewTerminalReader(stdin io.Reader, stdout, stderr io.Writer) (LineReader, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
		// History is kept by the terminal only.
		HistoryLimit: -1,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &terminalReader{rl: rl}, nil
}

func (t *terminalReader) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	return t.rl.Readline()
}

func (t *terminalReader) Close() error {
	return t.rl.Close()
}

type streamReader struct {
	r *bufio.Reader
}

// NewStreamReader reads newline terminated lines from a script or pipe. The
// final line doesn't need a trailing newline.
func NewStreamReader(r io.Reader) LineReader {
	return &streamReader{r: bufio.NewReader(r)}
}

func (s *streamReader) ReadLine(string) (string, error) {
	line, err := s.r.ReadString('\n')
	switch {
	case err == io.EOF && line != "":
		// Unterminated last line.
	case err != nil:
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (s *streamReader) Close() error {
	return nil
}
