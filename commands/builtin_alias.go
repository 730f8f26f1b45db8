package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephlewis42/hsh/core/alias"
)

const (
	aliasUse   = "alias [NAME[=VALUE] ...]"
	unaliasUse = "unalias NAME..."
)

// Alias lists, prints or defines aliases. Every argument is processed even
// if an earlier one fails.
func Alias(s *Shell, args []string) int {
	w := s.Stdout

	if len(args) == 1 {
		for _, e := range s.Aliases.List() {
			fmt.Fprintf(w, "%s='%s'\n", e.Name, e.Value)
		}
		return 0
	}

	status := 0
	for _, arg := range args[1:] {
		if i := strings.IndexByte(arg, '='); i >= 0 {
			name, value := arg[:i], unquote(arg[i+1:])

			switch err := s.Aliases.Set(name, value); {
			case errors.Is(err, alias.ErrTableFull):
				s.Errorf(args[0], "%s: alias table full (%d entries)", name, s.Aliases.Cap())
				status = 1
			case err != nil:
				s.Errorf(args[0], "%s: %v", name, err)
				status = 1
			}
			continue
		}

		value, ok := s.Aliases.Lookup(arg)
		if !ok {
			s.Errorf(args[0], "%s: not found", arg)
			status = 1
			continue
		}
		fmt.Fprintf(w, "%s='%s'\n", arg, value)
	}

	return status
}

// Unalias removes aliases.
func Unalias(s *Shell, args []string) int {
	if len(args) < 2 {
		return s.usageError(args, unaliasUse)
	}

	status := 0
	for _, name := range args[1:] {
		if !s.Aliases.Remove(name) {
			s.Errorf(args[0], "%s: not found", name)
			status = 1
		}
	}
	return status
}

// unquote strips one pair of matching single or double quotes surrounding v.
func unquote(v string) string {
	if len(v) >= 2 {
		if q := v[0]; (q == '\'' || q == '"') && v[len(v)-1] == q {
			return v[1 : len(v)-1]
		}
	}
	return v
}

func init() {
	mustAddBuiltin("alias", &BuiltinCommand{
		Use:   aliasUse,
		Short: "Define or display aliases.",
		Run:   Alias,
	})
	mustAddBuiltin("unalias", &BuiltinCommand{
		Use:   unaliasUse,
		Short: "Remove aliases.",
		Run:   Unalias,
	})
}
