package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pborman/getopt/v2"
)

const (
	exitUse = "exit [N]"
	cdUse   = "cd [DIR|-]"
	helpUse = "help [-s] [NAME...]"
)

// Exit ends the session with status N, or the last status if N is omitted.
func Exit(s *Shell, args []string) int {
	status := s.Status()
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			s.Errorf(args[0], "Illegal number: %s", args[1])
			return StatusUsage
		}
		status = n & 0xFF
	}

	s.Exit(status)
	return status
}

// Cd changes the working directory, keeping PWD and OLDPWD current.
func Cd(s *Shell, args []string) int {
	var dir string
	printDir := false

	switch len(args) {
	case 1:
		home, err := s.Env.UserHomeDir()
		if err != nil {
			return 0
		}
		dir = home
	case 2:
		dir = args[1]
		if dir == "-" {
			dir = s.Env.Getenv(EnvOldPWD)
			printDir = true
		}
	default:
		s.Errorf(args[0], "too many arguments")
		return 1
	}

	old, err := os.Getwd()
	if err != nil {
		old = s.Env.Getenv(EnvPWD)
	}
	if dir == "" {
		dir = old
	}

	if err := os.Chdir(dir); err != nil {
		s.Errorf(args[0], "can't cd to %s", dir)
		return StatusUsage
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = dir
	}
	s.Env.Setenv(EnvOldPWD, old)
	s.Env.Setenv(EnvPWD, pwd)

	if printDir {
		fmt.Fprintln(s.Stdout, pwd)
	}
	return 0
}

// Help describes the builtins.
func Help(s *Shell, args []string) int {
	opts := getopt.New()
	short := opts.Bool('s', "output only a short usage synopsis for each topic")

	if err := opts.Getopt(args, nil); err != nil {
		return s.usageError(args, helpUse)
	}

	w := s.Stdout
	names := opts.Args()
	if len(names) == 0 {
		fmt.Fprintf(w, "%s, a simple command interpreter.\n", s.Name)
		fmt.Fprintln(w, "These shell commands are defined internally.  Type `help' to see this list.")
		fmt.Fprintln(w, "Type `help name' to find out more about the function `name'.")
		fmt.Fprintln(w)
		for _, name := range ListBuiltins() {
			if b, ok := s.Builtins[name].(*BuiltinCommand); ok {
				fmt.Fprintf(w, " %s\n", b.Use)
			} else {
				fmt.Fprintf(w, " %s\n", name)
			}
		}
		return 0
	}

	status := 0
	for _, name := range names {
		builtin, ok := s.Builtins[name]
		if !ok {
			s.Errorf(args[0], "no help topics match `%s'", name)
			status = 1
			continue
		}

		b, ok := builtin.(*BuiltinCommand)
		switch {
		case !ok:
			fmt.Fprintf(w, "%s: %s\n", name, name)
		case *short:
			fmt.Fprintf(w, "%s: %s\n", name, b.Use)
		default:
			fmt.Fprintf(w, "%s: %s\n    %s\n", name, b.Use, b.Short)
		}
	}
	return status
}

func init() {
	mustAddBuiltin("exit", &BuiltinCommand{
		Use:   exitUse,
		Short: "Exit the shell with status N, or the last status if N is omitted.",
		Run:   Exit,
	})
	mustAddBuiltin("cd", &BuiltinCommand{
		Use:   cdUse,
		Short: "Change the working directory, to HOME if DIR is omitted or OLDPWD if DIR is -.",
		Run:   Cd,
	})
	mustAddBuiltin("help", &BuiltinCommand{
		Use:   helpUse,
		Short: "Display information about builtin commands.",
		Run:   Help,
	})
}
