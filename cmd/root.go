package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/josephlewis42/hsh/commands"
	"github.com/josephlewis42/hsh/core/config"
	"github.com/josephlewis42/hsh/core/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	cfgPath          string
	commandString    string
	forceInteractive bool

	// exitStatus is the status hsh exits with once the command finishes.
	exitStatus int
)

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// openEvents opens the configured event log, falling back to discarding
// events when none is configured.
func openEvents(cfg *config.Configuration) (*logger.Logger, io.Closer, error) {
	fd, err := cfg.OpenEventLog()
	switch {
	case errors.Is(err, config.ErrNoEventLog):
		return logger.NewNopLogger(), nopCloser{}, nil
	case err != nil:
		return nil, nil, err
	}
	return logger.NewJsonLinesLogRecorder(fd), fd, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hsh [flags] [SCRIPT [ARGUMENTS...]]",
	Short: "A simple command interpreter",
	Long: `hsh reads commands from a terminal, a script or standard input and runs
them. Commands are resolved as aliases, then builtins, then programs found
in PATH.

If no SCRIPT or -c COMMAND is given and standard input is a terminal, hsh
runs interactively.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		events, closer, err := openEvents(cfg)
		if err != nil {
			return err
		}
		defer closer.Close()

		name := os.Args[0]
		argv := append([]string{name}, args...)

		var input io.Reader = cmd.InOrStdin()
		interactive := forceInteractive
		switch {
		case commandString != "":
			input = strings.NewReader(commandString)
		case len(args) > 0:
			fd, err := os.Open(args[0])
			if err != nil {
				shellName := cfg.ShellName
				if shellName == "" {
					shellName = name
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: 0: Can't open %s\n", shellName, args[0])
				exitStatus = 127
				return nil
			}
			defer fd.Close()
			input = fd
		default:
			interactive = interactive || isTerminal(os.Stdin)
		}

		shell, err := commands.NewShell(commands.Options{
			Argv:        argv,
			Config:      cfg,
			Input:       input,
			Interactive: interactive,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
			Events:      events.NewSession(),
		})
		if err != nil {
			return err
		}
		defer shell.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		exitStatus = shell.Run(ctx)
		return nil
	},
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitStatus)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory, built-in defaults are used if empty")
	rootCmd.Flags().StringVarP(&commandString, "command", "c", "", "run COMMAND instead of reading a script or standard input")
	rootCmd.Flags().BoolVarP(&forceInteractive, "interactive", "i", false, "show prompts even if standard input isn't a terminal")

	// Flags after SCRIPT belong to the script.
	rootCmd.Flags().SetInterspersed(false)
}
