// Package parser splits raw input lines into commands and argument vectors.
//
// Quoting, escaping and operators are not recognized: a command is a run of
// fields separated by blanks, and a line is a run of commands separated by
// CommandSeparator.
package parser

import (
	"strings"
)

const (
	// CommandSeparator splits a chunk of input into individual commands.
	CommandSeparator = "\n"

	DefaultMaxCommands = 10
	DefaultMaxArgs     = 10
)

// Limits bounds the size of a parsed line. Input past either limit is
// silently dropped.
type Limits struct {
	// MaxCommands is the most commands kept from a single line.
	MaxCommands int
	// MaxArgs is the most fields kept from a single command, including the
	// command name.
	MaxArgs int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxCommands: DefaultMaxCommands,
		MaxArgs:     DefaultMaxArgs,
	}
}

func (l Limits) normalize() Limits {
	if l.MaxCommands <= 0 {
		l.MaxCommands = DefaultMaxCommands
	}
	if l.MaxArgs <= 0 {
		l.MaxArgs = DefaultMaxArgs
	}
	return l
}

// IsFieldSeparator reports whether r separates the fields of a command.
func IsFieldSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// Line is one parsed line of input. A session keeps only the most recent Line;
// parsing the next one releases it.
type Line struct {
	// Commands holds the raw, non-blank command strings in input order.
	Commands []string

	limits Limits
}

// Parse splits line into at most limits.MaxCommands commands. Blank commands
// are skipped and do not count toward the limit.
func Parse(line string, limits Limits) *Line {
	limits = limits.normalize()
	out := &Line{limits: limits}

	for _, cmd := range strings.Split(line, CommandSeparator) {
		if len(out.Commands) == limits.MaxCommands {
			break
		}
		if IsBlank(cmd) {
			continue
		}
		out.Commands = append(out.Commands, cmd)
	}

	return out
}

// Len returns the number of commands in the line.
func (l *Line) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Commands)
}

// Args splits the i-th command into its argument vector.
func (l *Line) Args(i int) []string {
	return SplitArgs(l.Commands[i], l.limits.MaxArgs)
}

// SplitArgs splits a single command into at most max fields. A max of zero or
// less uses DefaultMaxArgs.
func SplitArgs(command string, max int) []string {
	if max <= 0 {
		max = DefaultMaxArgs
	}

	fields := strings.FieldsFunc(command, IsFieldSeparator)
	if len(fields) > max {
		fields = fields[:max]
	}
	return fields
}

// IsBlank reports whether s contains only field separators.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !IsFieldSeparator(r) }) < 0
}

// FirstField splits command around its first field, returning any leading
// separators, the field itself and the remainder of the command.
func FirstField(command string) (lead, field, rest string) {
	start := strings.IndexFunc(command, func(r rune) bool { return !IsFieldSeparator(r) })
	if start < 0 {
		return command, "", ""
	}
	end := strings.IndexFunc(command[start:], IsFieldSeparator)
	if end < 0 {
		return command[:start], command[start:], ""
	}
	end += start
	return command[:start], command[start:end], command[end:]
}
