package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cmdOut and cmdErr are the subcommands' output streams. Tests may
// redirect these to capture CLI output without touching os.Stdout.
var (
	cmdOut io.Writer = os.Stdout
	cmdErr io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "vibelang",
	Short: "VibeLang compiler toolchain",
	Long: `vibelang is a Go implementation of the VibeLang compiler toolchain.

VibeLang is a small statically-typed, contract-bearing source language.
Source programs declare types (with invariants) and functions (with
preconditions, postconditions, and a body). The toolchain tokenizes source
text, parses it into an AST, type-checks it, runs AST-to-AST optimizations,
performs lightweight symbolic contract verification, and emits equivalent
code in a Python-like target runtime that enforces contracts at runtime.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func fail(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// readSource reads the named file, printing a CLI-style error and
// returning ok=false on failure (mirroring cli.py's _read_file).
func readSource(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		}
		return "", false
	}
	return string(content), true
}
