package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OJarrisonn/rlispy/repl"
)

// rootCmd represents the base command when called without any subcommands.
// Running rlispy with no arguments starts the interactive reader.
var rootCmd = &cobra.Command{
	Use:   "rlispy",
	Short: "A reader for a small lisp",
	Long: `rlispy tokenizes and parses a small lisp-like language.

Without a subcommand rlispy starts an interactive reader that parses each
submitted expression and prints the resulting form.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ")
	},
}

// Execute runs the root command.  It only needs to be called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
