// Package replloop implements seed's interactive Read-Eval-Print Loop on
// top of github.com/chzyer/readline: line editing, persistent history,
// and multi-line continuation when a block or paren is left open
// (SPEC_FULL.md §2.F.2). It does not replicate the teacher's interactive
// step-debugger — spec.md describes no such feature for seed.
package replloop

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/eZanmoto/seed/internal/builtin"
	"github.com/eZanmoto/seed/internal/eval"
	"github.com/eZanmoto/seed/internal/parse"
	"github.com/eZanmoto/seed/internal/trace"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

const (
	primaryPrompt      = "seed> "
	continuationPrompt = "...   "
)

// Options configures REPL behavior, populated from internal/config.
type Options struct {
	Prompt      string
	NoWelcome   bool
	NoHistory   bool
	HistoryFile string
	TraceOn     bool
	TraceFile   string
	Quiet       bool
}

// REPL is one interactive session: a readline instance reading lines, an
// evaluator whose global frame persists across lines, and the buffering
// state needed to detect an unterminated block/paren and await more
// input before reporting a syntax error.
type REPL struct {
	ev           *eval.Evaluator
	rl           *readline.Instance
	out          io.Writer
	prompt       string
	noWelcome    bool
	pendingLines []string
	awaitingCont bool
}

// New creates a REPL ready to Run.
func New(opts Options, stdout, stderr io.Writer) (*REPL, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = primaryPrompt
	}

	rlCfg := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if !opts.NoHistory && opts.HistoryFile != "" {
		rlCfg.HistoryFile = opts.HistoryFile
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	out := stdout
	if opts.Quiet {
		out = io.Discard
	}
	ev := eval.NewEvaluator(out)
	builtin.Register(ev)

	switch {
	case opts.TraceFile != "":
		ev.Trace = trace.NewFile(opts.TraceFile)
	case opts.TraceOn:
		ev.Trace = trace.NewStderr()
	}

	return &REPL{
		ev:        ev,
		rl:        rl,
		out:       out,
		prompt:    prompt,
		noWelcome: opts.NoWelcome,
	}, nil
}

// Close releases the readline instance and any open trace sink.
func (r *REPL) Close() error {
	if r.ev.Trace != nil {
		r.ev.Trace.Close()
	}
	return r.rl.Close()
}

// welcomeMessage is the banner printed once at startup unless suppressed.
func welcomeMessage() string {
	return "seed - press Ctrl+D or type 'exit' to leave\n\n"
}

// Run drives the read-eval-print loop until an exit command, Ctrl+D, or
// a non-recoverable readline error. It returns the process exit code.
func (r *REPL) Run() int {
	if !r.noWelcome {
		fmt.Fprint(r.out, welcomeMessage())
	}

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				r.pendingLines = nil
				r.awaitingCont = false
				r.rl.SetPrompt(r.prompt)
				fmt.Fprintln(r.out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(r.out)
				fmt.Fprintln(r.out, "Goodbye!")
				return 0
			}
			return 1
		}

		if r.processLine(line) {
			fmt.Fprintln(r.out, "Goodbye!")
			return 0
		}
	}
}

// processLine feeds one raw input line through the continuation buffer
// and reports whether the session should exit.
func (r *REPL) processLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	if !r.awaitingCont && isExitCommand(trimmed) {
		return true
	}
	if trimmed == "" && !r.awaitingCont {
		return false
	}

	r.pendingLines = append(r.pendingLines, line)
	joined := strings.Join(r.pendingLines, "\n")

	block, perr := parse.Parse(joined)
	if perr != nil {
		if shouldAwaitContinuation(perr) {
			r.awaitingCont = true
			r.rl.SetPrompt(continuationPrompt)
			return false
		}
		r.awaitingCont = false
		r.pendingLines = nil
		r.rl.SetPrompt(r.prompt)
		fmt.Fprintln(r.out, perr.Error())
		return false
	}

	r.awaitingCont = false
	r.pendingLines = nil
	r.rl.SetPrompt(r.prompt)

	result, rerr := r.ev.RunTop(block.Stmts)
	if rerr != nil {
		fmt.Fprintln(r.out, rerr.Error())
		return false
	}
	if result.Type() != value.TypeNull {
		fmt.Fprintln(r.out, result.String())
	}
	return false
}

// shouldAwaitContinuation reports whether perr signals an unterminated
// block/paren/string rather than a genuine syntax error, so the REPL
// should buffer more lines instead of reporting failure immediately.
func shouldAwaitContinuation(perr *verror.Error) bool {
	switch perr.ID {
	case verror.IDUnexpectedEOF, verror.IDUnclosedBlock, verror.IDUnclosedParen, verror.IDUnclosedString:
		return true
	default:
		return false
	}
}

func isExitCommand(s string) bool {
	return strings.EqualFold(s, "quit") || strings.EqualFold(s, "exit")
}
