package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/ast"
	"github.com/ycharfi09/VibeLang/internal/parser"
	"github.com/ycharfi09/VibeLang/internal/semantic"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a VibeLang file and print an AST summary",
	Long: `Parse a VibeLang source file and print a summary of its imports and
declarations.

Examples:
  vibelang parse script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, ok := readSource(args[0])
	if !ok {
		return fmt.Errorf("failed to read %s", args[0])
	}

	program, err := parser.Parse(source)
	if err != nil {
		fmt.Fprintf(cmdErr, "Error: %s\n", err.Error())
		return err
	}

	printParseSummary(program)
	return nil
}

func printParseSummary(program *ast.Program) {
	fmt.Fprintf(cmdOut, "Imports: %d\n", len(program.Imports))
	for _, imp := range program.Imports {
		fmt.Fprintf(cmdOut, "  - %s\n", imp.ModulePath)
	}

	fmt.Fprintf(cmdOut, "Declarations: %d\n", len(program.Declarations))
	for _, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.TypeDeclaration:
			fmt.Fprintf(cmdOut, "  type %s (%d invariants)\n", d.Name, len(d.Invariants))
		case *ast.FunctionDeclaration:
			names := make([]string, len(d.Parameters))
			for i, p := range d.Parameters {
				names[i] = p.Name
			}
			fmt.Fprintf(cmdOut, "  define %s(%s) -> %s\n", d.Name, strings.Join(names, ", "), semantic.TypeToStr(d.ReturnType))
			fmt.Fprintf(cmdOut, "    preconditions: %d\n", len(d.Preconditions))
			fmt.Fprintf(cmdOut, "    postconditions: %d\n", len(d.Postconditions))
		}
	}
}
