// Command vibelang is the CLI entry point for the VibeLang compiler
// toolchain: lex, parse, check, compile, verify, optimize, and fmt.
package main

import (
	"os"

	"github.com/ycharfi09/VibeLang/cmd/vibelang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
