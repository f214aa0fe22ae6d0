package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ycharfi09/VibeLang/internal/format"
	"github.com/ycharfi09/VibeLang/internal/parser"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Format a VibeLang source file",
	Long: `Format a VibeLang source file: parse it into an AST and pretty-print
the AST back to canonical source (2-space indents, a blank line between
declarations).

By default the formatted source is written to stdout. With -w it
overwrites the input file in place.

Examples:
  vibelang fmt script.vbl
  vibelang fmt -w script.vbl`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "overwrite the input file with the formatted result")
}

func runFmt(_ *cobra.Command, args []string) error {
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

	formatted := format.Format(program)

	if fmtWrite {
		if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("error writing file: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmdOut, formatted)
	return nil
}
