// Command seed is the CLI entry point: script runner, `-c` evaluator,
// syntax checker, and interactive REPL (SPEC_FULL.md §6.F).
package main

import (
	"os"

	"github.com/eZanmoto/seed/internal/runtime"
)

func main() {
	os.Exit(runtime.Run(os.Stdin, os.Stdout, os.Stderr))
}
