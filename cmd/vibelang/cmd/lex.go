package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex FILE",
	Short: "Tokenize a VibeLang file and print its tokens",
	Long: `Tokenize (lex) a VibeLang source file and print the resulting tokens,
one per line, as "line:col  TYPE  value".

Examples:
  vibelang lex script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	source, ok := readSource(args[0])
	if !ok {
		return fmt.Errorf("failed to read %s", args[0])
	}

	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		fmt.Fprintf(cmdErr, "Lex error: %s\n", lexErr.Error())
		return lexErr
	}

	for _, tok := range tokens {
		fmt.Fprintf(cmdOut, "%d:%d  %-20s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Type.String(), tok.Literal)
	}
	return nil
}
