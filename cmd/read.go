package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OJarrisonn/rlispy/parser"
)

var readExpression bool

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Parse lisp source and print its forms",
	Long:  `Parse lisp source supplied via the command line or files and print each top-level form.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := readSources(args, readExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range srcs {
			forms, err := parser.ParseString(src.name, src.text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, form := range forms {
				fmt.Println(form)
			}
		}
	},
}

type source struct {
	name string
	text string
}

func readSources(args []string, expression bool) ([]source, error) {
	srcs := make([]source, len(args))
	if expression {
		for i := range args {
			srcs[i] = source{name: fmt.Sprintf("arg%d", i+1), text: args[i]}
		}
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{name: path, text: string(b)}
	}
	return srcs, nil
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
}
