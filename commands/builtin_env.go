package commands

import (
	"fmt"
)

const (
	setenvUse   = "setenv NAME VALUE"
	unsetenvUse = "unsetenv NAME"
	envUse      = "env"
)

// Setenv adds or updates a variable in the shell environment.
func Setenv(s *Shell, args []string) int {
	if len(args) != 3 {
		return s.usageError(args, setenvUse)
	}

	if err := s.Env.Setenv(args[1], args[2]); err != nil {
		s.Errorf(args[0], "%s: %v", args[1], err)
		return StatusUsage
	}
	return 0
}

// Unsetenv removes a variable from the shell environment. Removing a
// variable that isn't set succeeds.
func Unsetenv(s *Shell, args []string) int {
	if len(args) != 2 {
		return s.usageError(args, unsetenvUse)
	}

	// Unsetenv never fails on the store, missing keys are a no-op.
	_ = s.Env.Unsetenv(args[1])
	return 0
}

// Env prints the shell environment.
func Env(s *Shell, args []string) int {
	if len(args) != 1 {
		return s.usageError(args, envUse)
	}

	for _, e := range s.Env.Environ() {
		fmt.Fprintln(s.Stdout, e)
	}
	return 0
}

func init() {
	mustAddBuiltin("setenv", &BuiltinCommand{
		Use:   setenvUse,
		Short: "Set an environment variable, creating it if needed.",
		Run:   Setenv,
	})
	mustAddBuiltin("unsetenv", &BuiltinCommand{
		Use:   unsetenvUse,
		Short: "Remove an environment variable.",
		Run:   Unsetenv,
	})
	mustAddBuiltin("env", &BuiltinCommand{
		Use:   envUse,
		Short: "Print the environment.",
		Run:   Env,
	})
}
