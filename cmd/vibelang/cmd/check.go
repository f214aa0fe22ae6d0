package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/semantic"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Type-check a VibeLang file",
	Long: `Parse and type-check a VibeLang source file, printing every diagnostic
the checker accumulates (the checker never stops at the first error).

Exits non-zero if any type error is found.

Examples:
  vibelang check script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
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

	errs := semantic.Check(program)
	if len(errs) == 0 {
		fmt.Fprintln(cmdOut, "OK: no type errors")
		return nil
	}

	compilerErrs := make([]*cerrors.CompilerError, len(errs))
	for i, e := range errs {
		e.Source = source
		e.File = filename
		compilerErrs[i] = e.CompilerError
	}
	fmt.Fprint(cmdErr, cerrors.FormatErrors(compilerErrs, true))
	fmt.Fprintln(cmdErr)
	return fmt.Errorf("type checking failed with %d error(s)", len(errs))
}
