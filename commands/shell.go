package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/josephlewis42/hsh/core/alias"
	"github.com/josephlewis42/hsh/core/config"
	"github.com/josephlewis42/hsh/core/env"
	"github.com/josephlewis42/hsh/core/logger"
	"github.com/josephlewis42/hsh/core/parser"
	"github.com/josephlewis42/hsh/core/process"
	"github.com/spf13/afero"
)

const (
	EnvHome   = "HOME"
	EnvPWD    = "PWD"
	EnvOldPWD = "OLDPWD"
	EnvPath   = process.EnvPath
	EnvUser   = "USER"

	DefaultName   = "hsh"
	DefaultPrompt = `$ `

	// StatusUsage is the status of a builtin called with bad arguments.
	StatusUsage = 2
)

// EventRecorder stores session events.
type EventRecorder interface {
	Record(event logger.LogType) error
}

// Options configures a new Shell.
type Options struct {
	// Name prefixes diagnostics. If empty, the configured shell_name or
	// Argv[0] is used.
	Name string
	// Argv holds the invocation arguments, the program or script name first.
	Argv []string
	// Config holds shell settings, config.Default() if nil.
	Config *config.Configuration
	// Environ seeds the environment snapshot. If nil, the process
	// environment is copied.
	Environ []string

	// Input is where command lines are read from.
	Input io.Reader
	// Interactive shows prompts and reads Input as a terminal.
	Interactive bool

	// Stdin, Stdout and Stderr are handed to external commands; builtins
	// write to Stdout and Stderr.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Fs is searched for executables, afero.NewOsFs() if nil.
	Fs afero.Fs
	// Events receives session events, discarded if nil.
	Events EventRecorder
}

// Shell holds the state of a single interpreter session.
type Shell struct {
	// Name prefixes diagnostics.
	Name string
	// Argv holds the invocation arguments.
	Argv []string

	Env         *env.Store
	Aliases     *alias.Table
	Builtins    map[string]ShellBuiltin
	Fs          afero.Fs
	Interactive bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Set to true to quit the shell
	Quit bool

	reader LineReader
	events EventRecorder
	limits parser.Limits
	colors colorPrinter
	prompt string

	lastRet int
	lineNo  int

	// line and args hold the line and command being executed.
	line *parser.Line
	args []string
}

// NewShell creates a session ready to Run.
func NewShell(opts Options) (*Shell, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Shell{
		Name:        opts.Name,
		Argv:        append([]string(nil), opts.Argv...),
		Aliases:     alias.New(cfg.AliasCapacity),
		Builtins:    AllBuiltins,
		Fs:          opts.Fs,
		Interactive: opts.Interactive,
		Stdin:       opts.Stdin,
		Stdout:      opts.Stdout,
		Stderr:      opts.Stderr,
		events:      opts.Events,
		limits: parser.Limits{
			MaxCommands: cfg.MaxCommands,
			MaxArgs:     cfg.MaxArgs,
		},
		colors: newColorPrinter(cfg.Color, opts.Interactive),
		prompt: cfg.Prompt,
	}

	switch {
	case s.Name != "":
	case cfg.ShellName != "":
		s.Name = cfg.ShellName
	case len(s.Argv) > 0:
		s.Name = s.Argv[0]
	default:
		s.Name = DefaultName
	}

	if opts.Environ != nil {
		s.Env = env.NewFromEnvList(opts.Environ)
	} else {
		s.Env = env.NewFromOS()
	}

	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	if s.events == nil {
		s.events = logger.NewNopLogger().Sessionless()
	}
	if s.Stdout == nil {
		s.Stdout = io.Discard
	}
	if s.Stderr == nil {
		s.Stderr = io.Discard
	}

	for _, a := range cfg.Aliases {
		if err := s.Aliases.Set(a.Name, a.Value); err != nil {
			return nil, fmt.Errorf("alias %q: %w", a.Name, err)
		}
	}

	input := opts.Input
	if input == nil {
		input = strings.NewReader("")
	}
	if s.Interactive {
		reader, err := NewTerminalReader(input, s.Stdout, s.Stderr)
		if err != nil {
			return nil, err
		}
		s.reader = reader
	} else {
		s.reader = NewStreamReader(input)
	}

	return s, nil
}

// Status returns the status of the most recently completed command.
func (s *Shell) Status() int {
	return s.lastRet
}

// LineNumber returns the number of lines read so far.
func (s *Shell) LineNumber() int {
	return s.lineNo
}

// Exit stops the session after the current command with the given status.
func (s *Shell) Exit(status int) {
	s.lastRet = status
	s.Quit = true
}

// Close releases the resources held by the session.
func (s *Shell) Close() error {
	s.line = nil
	s.args = nil
	s.Aliases.Clear()
	s.Env.Clearenv()
	return s.reader.Close()
}

// Run reads and executes lines until the input ends or the session is told to
// exit, then returns the last status.
func (s *Shell) Run(ctx context.Context) int {
	s.record(&logger.SessionStart{Argv: s.Argv, Interactive: s.Interactive})

	for !s.Quit {
		line, err := s.reader.ReadLine(s.promptString())

		switch {
		case err == io.EOF:
			if s.Interactive {
				fmt.Fprintln(s.Stdout)
			}
			s.Quit = true

		case errors.Is(err, ErrInterrupt):
			// Interrupt clears line.
			continue

		case err != nil:
			fmt.Fprintf(s.Stderr, "%s: %v\n", s.Name, err)
			s.Quit = true

		default:
			s.lineNo++
			s.RunLine(ctx, line)
		}
	}

	s.record(&logger.SessionEnd{Status: s.lastRet, Lines: s.lineNo})
	return s.lastRet
}

// RunLine parses and executes a single line of input. A line with no
// commands leaves the status unchanged. Once the session has quit, either
// through exit or the end of input, RunLine does nothing.
func (s *Shell) RunLine(ctx context.Context, line string) {
	s.line = parser.Parse(line, s.limits)

	for i := 0; i < s.line.Len() && !s.Quit; i++ {
		s.execute(ctx, s.line.Commands[i])
	}
}

func (s *Shell) execute(ctx context.Context, command string) {
	s.args = parser.SplitArgs(s.Aliases.Substitute(command), s.limits.MaxArgs)
	if len(s.args) == 0 {
		// The command was an alias for nothing.
		return
	}

	if builtin, ok := s.Builtins[s.args[0]]; ok {
		s.lastRet = builtin.Main(s, s.args)
		s.record(&logger.RunBuiltin{Command: s.args, Status: s.lastRet})
		return
	}

	s.lastRet = s.executeProgram(ctx, s.args)
}

func (s *Shell) executeProgram(ctx context.Context, args []string) int {
	path, err := process.LookPath(s.Fs, s.Env, args[0])
	if err != nil {
		s.Errorf(args[0], "not found")
		s.record(&logger.UnknownCommand{Command: args, Line: s.lineNo})
		return process.StatusNotFound
	}

	status, err := process.Run(ctx, &process.Cmd{
		Path:   path,
		Args:   args,
		Env:    s.Env.Environ(),
		Stdin:  s.Stdin,
		Stdout: s.Stdout,
		Stderr: s.Stderr,
	})

	event := &logger.RunCommand{
		Command:             args,
		ResolvedCommandPath: path,
		Status:              status,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
		switch {
		case errors.Is(err, fs.ErrNotExist):
			s.Errorf(args[0], "not found")
		case errors.Is(err, fs.ErrPermission):
			s.Errorf(args[0], "Permission denied")
		default:
			s.Errorf(args[0], "%v", err)
		}
	}
	s.record(event)

	return status
}

// Errorf writes a diagnostic naming the shell, the current line and the
// failing command.
func (s *Shell) Errorf(command, format string, a ...interface{}) {
	msg := fmt.Sprintf("%s: %d: %s: %s", s.Name, s.lineNo, command, fmt.Sprintf(format, a...))
	fmt.Fprintln(s.Stderr, s.colors.Sprint(ColorBoldRed, msg))
}

func (s *Shell) record(event logger.LogType) {
	// Event logging is best effort and never interrupts the session.
	_ = s.events.Record(event)
}

func (s *Shell) promptString() string {
	if !s.Interactive {
		return ""
	}

	pwd, _ := os.Getwd()
	host, _ := os.Hostname()

	return s.colors.Sprint(ColorBoldGreen, expandPrompt(s.prompt, promptValues{
		User:   s.Env.Getenv(EnvUser),
		Host:   host,
		Dir:    pwd,
		Home:   s.Env.Getenv(EnvHome),
		Status: s.lastRet,
		Root:   os.Geteuid() == 0,
	}))
}

type promptValues struct {
	User   string
	Host   string
	Dir    string
	Home   string
	Status int
	Root   bool
}

func expandPrompt(prompt string, v promptValues) string {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	dir := v.Dir
	if v.Home != "" && strings.HasPrefix(dir, v.Home) {
		dir = "~" + strings.TrimPrefix(dir, v.Home)
	}

	prompt = strings.ReplaceAll(prompt, `\u`, v.User)
	prompt = strings.ReplaceAll(prompt, `\h`, v.Host)
	prompt = strings.ReplaceAll(prompt, `\w`, dir)
	prompt = strings.ReplaceAll(prompt, `\?`, strconv.Itoa(v.Status))

	if v.Root {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}
