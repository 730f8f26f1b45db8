// Package process finds and runs external programs on behalf of the shell.
package process

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// Exit statuses reported by the shell itself rather than a child.
const (
	StatusNotExecutable = 126
	StatusNotFound      = 127

	// StatusSignalBase is added to the signal number of a child killed by a
	// signal.
	StatusSignalBase = 128
)

// Cmd describes an external program to run.
type Cmd struct {
	// Path is the path of the command to run.
	Path string

	// Args holds command line arguments, including the command as Args[0].
	// If the Args field is empty or nil, Run uses {Path}.
	Args []string

	// Env specifies the environment of the process.
	// Each entry is of the form "key=value".
	// Unlike os/exec, a nil Env means an empty environment; the process
	// environment is never inherited implicitly.
	Env []string

	// Dir specifies the working directory of the command.
	// If Dir is the empty string, Run runs the command in the
	// calling process's current directory.
	Dir string

	// Stdin specifies the process's standard input.
	Stdin io.Reader

	// Stdout and Stderr specify the process's standard output and error.
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the command and waits for it to finish, returning its exit
// status. A non-nil error means the process could not be started; the
// returned status then describes why (see SpawnStatus).
func Run(ctx context.Context, c *Cmd) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path)
	if len(c.Args) > 0 {
		cmd.Args = c.Args
	}
	cmd.Env = c.Env
	if cmd.Env == nil {
		cmd.Env = []string{}
	}
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Start(); err != nil {
		return SpawnStatus(err), err
	}

	// Errors from Wait are either a non-zero exit, which the ProcessState
	// describes, or a failure copying I/O after the child already exited.
	_ = cmd.Wait()

	return ExitStatus(cmd.ProcessState), nil
}

// SpawnStatus maps an error from starting a process to a shell status.
func SpawnStatus(err error) int {
	if errors.Is(err, fs.ErrNotExist) {
		return StatusNotFound
	}
	return StatusNotExecutable
}

// ExitStatus converts the state of a finished process into a shell status:
// its exit code, or StatusSignalBase plus the signal if it was killed.
func ExitStatus(state *os.ProcessState) int {
	if state == nil {
		return StatusNotExecutable
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return StatusSignalBase + int(ws.Signal())
	}
	return state.ExitCode()
}
