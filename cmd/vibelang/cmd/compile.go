package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/cerrors"
	"github.com/ycharfi09/VibeLang/internal/codegen"
	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/semantic"
)

var compileOutputFile string

var compileCmd = &cobra.Command{
	Use:   "compile FILE",
	Short: "Compile a VibeLang file to generated target source",
	Long: `Compile a VibeLang program: parse, type-check, and lower it to the
Python-like target runtime that enforces contracts at runtime.

Type errors are reported and stop compilation; the generator itself only
fails on an internal invariant violation (an AST node kind it cannot lower).

Examples:
  vibelang compile script.vbl
  vibelang compile script.vbl -o out.py`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutputFile, "output", "o", "", "write generated source to this file instead of stdout")
}

func runCompile(_ *cobra.Command, args []string) error {
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

	if errs := semantic.Check(program); len(errs) > 0 {
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

	generated, genErr := codegen.Generate(program)
	if genErr != nil {
		genErr.Source = source
		genErr.File = filename
		fmt.Fprintln(cmdErr, genErr.Format(true))
		return genErr
	}

	if compileOutputFile != "" {
		if err := os.WriteFile(compileOutputFile, []byte(generated), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", compileOutputFile, err)
		}
		return nil
	}

	fmt.Fprint(cmdOut, generated)
	return nil
}
