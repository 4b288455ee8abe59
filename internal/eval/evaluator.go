// Package eval is the evaluator core of seed: the "E" expression
// evaluator, "X" statement executor, "D" destructuring/spread logic, and
// "T" type-function table from spec.md §2, plus the l-value "place"
// representation spec.md §9 recommends in place of pointer/lens tricks.
package eval

import (
	"io"

	"github.com/eZanmoto/seed/internal/scope"
	"github.com/eZanmoto/seed/internal/trace"
	"github.com/eZanmoto/seed/internal/value"
)

// Evaluator is the runtime state shared across one program execution: the
// scope chain, the output sink for `print`, and the optional trace sink.
type Evaluator struct {
	Scope *scope.Scope
	Out   io.Writer

	// callDepth counts active user-function calls. It is reported in trace
	// output, and a Return is rejected with a BadControlFlow error when it
	// is zero; it imposes no stack-depth limit (spec.md §5 specifies none).
	callDepth int

	// loopDepth counts enclosing While/For loops; Break and Continue are
	// rejected with a BadControlFlow error when this is zero (spec.md
	// §4.4: break/continue outside a loop is an error, not a no-op).
	loopDepth int

	Trace *trace.Session // nil when tracing is disabled
}

// NewEvaluator creates an Evaluator with a fresh global frame that writes
// `print` output to out.
func NewEvaluator(out io.Writer) *Evaluator {
	return &Evaluator{Scope: scope.New(), Out: out}
}
