package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/verifier"
)

var verifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Run VibeLang's symbolic contract verifier on a file",
	Long: `Parse a VibeLang source file and symbolically check every
precondition, postcondition, and type invariant, printing one line per
result with a status glyph:

  ✓  proven      the contract is trivially true
  ?  unproven    the verifier could not decide
  ✗  violated    the contract is trivially false

Exits non-zero iff any result is violated.

Examples:
  vibelang verify script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func statusGlyph(s verifier.Status) string {
	switch s {
	case verifier.Proven:
		return "✓"
	case verifier.Violated:
		return "✗"
	default:
		return "?"
	}
}

func runVerify(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, ok := readSource(filename)
	if !ok {
		return fmt.Errorf("failed to read %s", filename)
	}

	program, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintf(cmdErr, "Error: %s\n", err.Error())
		return err
	}

	results := verifier.Verify(program)
	violated := 0
	for _, r := range results {
		fmt.Fprintf(cmdOut, "%s %d:%d  %s %s — %s\n",
			statusGlyph(r.Status), r.Line, r.Column, r.FunctionName, r.ContractType, r.Message)
		if r.Status == verifier.Violated {
			violated++
		}
	}

	if violated > 0 {
		return fmt.Errorf("%d contract(s) violated", violated)
	}
	return nil
}
