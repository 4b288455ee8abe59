// Package config implements the "C" CLI configuration layer for seed:
// flags, environment overrides, defaulting, validation, and mode
// detection, following the shape of the teacher's cmd/viro config/mode
// split (SPEC_FULL.md §6.F) but with seed's own flag surface.
package config

import (
	"flag"
	"fmt"
	"os"
)

// Config holds every flag/env-derived setting cmd/seed needs.
type Config struct {
	EvalExpr   string
	CheckOnly  bool
	ScriptFile string
	Args       []string

	TraceOn    bool
	TraceFile  string
	Quiet      bool
	NoPrint    bool

	NoHistory   bool
	HistoryFile string
	Prompt      string
	NoWelcome   bool

	ShowVersion bool
	ShowHelp    bool
}

// New returns a Config with the teacher's convention of empty-string
// defaults, filled in later by ApplyDefaults.
func New() *Config {
	return &Config{}
}

// LoadFromEnv applies SEED_-prefixed environment overrides, mirroring the
// teacher's VIRO_-prefixed ones.
func (c *Config) LoadFromEnv() error {
	if f := os.Getenv("SEED_HISTORY_FILE"); f != "" {
		c.HistoryFile = f
	}
	if f := os.Getenv("SEED_TRACE_FILE"); f != "" {
		c.TraceFile = f
	}
	return nil
}

// LoadFromFlags parses os.Args[1:], splitting out a script file (and its
// own trailing arguments) or a `--`-delimited REPL-args region before
// handing the rest to flag.FlagSet, exactly as the teacher's
// splitCommandLineArgs/LoadFromFlags do.
func (c *Config) LoadFromFlags() error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	evalExpr := fs.String("c", "", "Evaluate expression and print result")
	check := fs.Bool("check", false, "Parse only, report syntax errors without executing")
	traceOn := fs.Bool("trace", false, "Enable structured execution tracing to stderr")
	traceFile := fs.String("trace-file", "", "Enable structured execution tracing to this file")
	quiet := fs.Bool("quiet", false, "Suppress non-error output")
	noPrint := fs.Bool("no-print", false, "Don't print the result of -c")

	noHistory := fs.Bool("no-history", false, "Disable REPL command history")
	historyFile := fs.String("history-file", "", "REPL history file location")
	prompt := fs.String("prompt", "", "Custom REPL prompt")
	noWelcome := fs.Bool("no-welcome", false, "Skip the REPL welcome message")

	version := fs.Bool("version", false, "Show version information")
	help := fs.Bool("help", false, "Show usage information")

	args := os.Args[1:]
	parsed := splitCommandLineArgs(args)

	var flagArgs []string
	switch {
	case parsed.ReplArgsIdx >= 0:
		flagArgs = args[:parsed.ReplArgsIdx]
		c.Args = args[parsed.ReplArgsIdx+1:]
	case parsed.ScriptIdx >= 0:
		flagArgs = args[:parsed.ScriptIdx]
	default:
		flagArgs = args
	}

	if err := fs.Parse(flagArgs); err != nil {
		return err
	}

	c.EvalExpr = *evalExpr
	c.CheckOnly = *check
	c.TraceOn = *traceOn
	if *traceFile != "" {
		c.TraceFile = *traceFile
	}
	c.Quiet = *quiet
	c.NoPrint = *noPrint

	c.NoHistory = *noHistory
	if *historyFile != "" {
		c.HistoryFile = *historyFile
	}
	if *prompt != "" {
		c.Prompt = *prompt
	}
	c.NoWelcome = *noWelcome

	c.ShowVersion = *version
	c.ShowHelp = *help

	if parsed.ReplArgsIdx < 0 && parsed.ScriptIdx >= 0 {
		c.ScriptFile = args[parsed.ScriptIdx]
		c.Args = args[parsed.ScriptIdx+1:]
	}

	return nil
}

// ApplyDefaults fills in anything LoadFromEnv/LoadFromFlags left unset.
func (c *Config) ApplyDefaults() error {
	if c.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			c.HistoryFile = home + "/.seed_history"
		}
	}
	if c.Prompt == "" {
		c.Prompt = "seed> "
	}
	return nil
}

// Validate rejects flag combinations that don't make sense together,
// mirroring the teacher's Config.Validate.
func (c *Config) Validate() error {
	if c.CheckOnly && c.ScriptFile == "" {
		return fmt.Errorf("--check flag requires a script file")
	}
	if c.NoPrint && c.EvalExpr == "" {
		return fmt.Errorf("--no-print flag requires -c")
	}
	if c.TraceOn && c.TraceFile != "" {
		return fmt.Errorf("--trace and --trace-file are mutually exclusive")
	}
	return nil
}

// ParsedArgs is the result of scanning raw argv for a script-file
// position or a `--` REPL-args delimiter before flag parsing runs.
type ParsedArgs struct {
	ScriptIdx   int
	ReplArgsIdx int
}

// splitCommandLineArgs finds the first bare (non-flag) argument, treating
// it as the script file, or the `--` delimiter introducing raw REPL args
// — whichever comes first — so flag.FlagSet never sees a script's own
// arguments and mistakes them for its own flags.
func splitCommandLineArgs(args []string) *ParsedArgs {
	result := &ParsedArgs{ScriptIdx: -1, ReplArgsIdx: -1}

	valueFlags := map[string]bool{
		"-c": true, "-trace-file": true, "-history-file": true, "-prompt": true,
		"--c": true, "--trace-file": true, "--history-file": true, "--prompt": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			result.ReplArgsIdx = i
			return result
		}

		if len(arg) > 0 && arg[0] == '-' {
			if valueFlags[arg] && i+1 < len(args) {
				i++
			}
			continue
		}

		result.ScriptIdx = i
		return result
	}

	return result
}
