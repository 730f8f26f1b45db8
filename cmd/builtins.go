package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/hsh/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the shell builtins
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 8, 8, 2, ' ', 0)
		defer tw.Flush()

		for _, name := range commands.ListBuiltins() {
			if b, ok := commands.AllBuiltins[name].(*commands.BuiltinCommand); ok {
				fmt.Fprintf(tw, "%s\t%s\n", b.Use, b.Short)
			} else {
				fmt.Fprintf(tw, "%s\t\n", name)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
