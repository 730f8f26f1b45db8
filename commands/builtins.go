package commands

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/hsh/core/logger"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command run inside the shell process. Its result becomes
// the shell's status; builtins report failures through it rather than by
// returning errors.
type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// BuiltinCommand is a builtin with usage documentation.
type BuiltinCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string

	Run ShellBuiltinFunc
}

var _ ShellBuiltin = (*BuiltinCommand)(nil)

func (b *BuiltinCommand) Main(s *Shell, args []string) int {
	return b.Run(s, args)
}

// mustAddBuiltin registers a builtin, panicking if the name is taken.
func mustAddBuiltin(name string, cmd ShellBuiltin) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin: %q", name))
	}
	AllBuiltins[name] = cmd
}

// ListBuiltins returns the names of all registered builtins, sorted.
func ListBuiltins() []string {
	var out []string
	for name := range AllBuiltins {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// usageError reports a malformed builtin invocation and returns StatusUsage.
func (s *Shell) usageError(args []string, use string) int {
	msg := "usage: " + use
	s.Errorf(args[0], "%s", msg)
	s.record(&logger.InvalidInvocation{Command: args, Error: msg})
	return StatusUsage
}
