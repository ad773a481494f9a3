package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OJarrisonn/rlispy/parser/lexer"
)

var tokensExpression bool

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Dump the token stream of lisp source",
	Long:  `Tokenize lisp source supplied via the command line or files and print one token per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := readSources(args, tokensExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range srcs {
			toks, err := lexer.Tokenize(src.name, src.text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, tok := range toks {
				fmt.Printf("%s\t%s\n", tok.Source, tok)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
}
