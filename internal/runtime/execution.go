// Package runtime is the "R" runtime driver: it owns the global frame,
// registers builtins, invokes the parser, executes a program, and maps
// diagnostics to process exit codes (SPEC_FULL.md §2.F component table).
package runtime

import (
	"fmt"
	"io"

	"github.com/eZanmoto/seed/internal/builtin"
	"github.com/eZanmoto/seed/internal/config"
	"github.com/eZanmoto/seed/internal/eval"
	"github.com/eZanmoto/seed/internal/parse"
	"github.com/eZanmoto/seed/internal/trace"
)

// ExecutionContext bundles one run's input source and reporting options,
// mirroring the teacher's cmd/viro ExecutionContext.
type ExecutionContext struct {
	Cfg         *config.Config
	Input       InputSource
	PrintResult bool
	ParseOnly   bool

	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs one script/expression/check per ctx and returns the
// process exit code.
func Execute(ctx *ExecutionContext) int {
	content, err := ctx.Input.Load()
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "Error loading input: %v\n", err)
		return ExitError
	}

	block, perr := parse.Parse(content)
	if perr != nil {
		fmt.Fprintf(ctx.Stderr, "%v\n", perr)
		return ExitSyntax
	}

	if ctx.ParseOnly {
		if !ctx.Cfg.Quiet {
			fmt.Fprintf(ctx.Stdout, "syntax OK\n")
		}
		return ExitSuccess
	}

	ev := setupEvaluator(ctx.Cfg, ctx.Stdout)
	defer func() {
		if ev.Trace != nil {
			ev.Trace.Close()
		}
	}()

	result, rerr := ev.RunTop(block.Stmts)
	if rerr != nil {
		fmt.Fprintf(ctx.Stderr, "%v\n", rerr)
		return handleError(rerr)
	}

	if ctx.PrintResult && !ctx.Cfg.Quiet {
		fmt.Fprintln(ctx.Stdout, result.String())
	}

	return ExitSuccess
}

func setupEvaluator(cfg *config.Config, stdout io.Writer) *eval.Evaluator {
	out := stdout
	if cfg.Quiet {
		out = io.Discard
	}
	ev := eval.NewEvaluator(out)
	builtin.Register(ev)

	switch {
	case cfg.TraceFile != "":
		ev.Trace = trace.NewFile(cfg.TraceFile)
	case cfg.TraceOn:
		ev.Trace = trace.NewStderr()
	}

	return ev
}
