package runtime

import (
	"fmt"
	"io"

	"github.com/eZanmoto/seed/internal/config"
	"github.com/eZanmoto/seed/internal/replloop"
)

// Run loads configuration from the environment and argv, dispatches to
// the mode it selects, and returns the process exit code — the single
// entry point cmd/seed's main calls.
func Run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitUsage
	}
	if err := cfg.LoadFromFlags(); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitUsage
	}
	if err := cfg.ApplyDefaults(); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitUsage
	}

	mode, err := config.DetectMode(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return ExitUsage
	}

	switch mode {
	case config.ModeVersion:
		fmt.Fprintln(stdout, versionString())
		return ExitSuccess

	case config.ModeHelp:
		fmt.Fprint(stdout, helpString())
		return ExitSuccess

	case config.ModeREPL:
		opts := replloop.Options{
			Prompt:      cfg.Prompt,
			NoWelcome:   cfg.NoWelcome,
			NoHistory:   cfg.NoHistory,
			HistoryFile: cfg.HistoryFile,
			TraceOn:     cfg.TraceOn,
			TraceFile:   cfg.TraceFile,
			Quiet:       cfg.Quiet,
		}
		r, err := replloop.New(opts, stdout, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "error initializing REPL: %v\n", err)
			return ExitError
		}
		defer r.Close()
		return r.Run()

	case config.ModeCheck:
		return Execute(&ExecutionContext{
			Cfg:       cfg,
			Input:     &FileInput{Path: cfg.ScriptFile},
			ParseOnly: true,
			Stdout:    stdout,
			Stderr:    stderr,
		})

	case config.ModeEval:
		return Execute(&ExecutionContext{
			Cfg:         cfg,
			Input:       &ExprInput{Expr: cfg.EvalExpr, WithStdin: false, Stdin: stdin},
			PrintResult: !cfg.NoPrint,
			Stdout:      stdout,
			Stderr:      stderr,
		})

	case config.ModeScript:
		return Execute(&ExecutionContext{
			Cfg:    cfg,
			Input:  &FileInput{Path: cfg.ScriptFile},
			Stdout: stdout,
			Stderr: stderr,
		})

	default:
		fmt.Fprintf(stderr, "unknown mode: %v\n", mode)
		return ExitUsage
	}
}
