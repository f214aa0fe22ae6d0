package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/format"
	"github.com/ycharfi09/VibeLang/internal/optimizer"
	"github.com/ycharfi09/VibeLang/internal/parser"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize FILE",
	Short: "Run the AST optimizer and print the optimized program",
	Long: `Parse a VibeLang source file, run the constant-folding, identity-
simplification, and dead-code-elimination optimizer, and print the
optimized program in canonical formatted source on stdout. The number of
optimizations applied is written to stderr.

Examples:
  vibelang optimize script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, args []string) error {
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

	optimized, count := optimizer.Optimize(program)
	fmt.Fprint(cmdOut, format.Format(optimized))
	fmt.Fprintf(cmdErr, "optimizations applied: %d\n", count)
	return nil
}
