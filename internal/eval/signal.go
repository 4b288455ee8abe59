package eval

import "github.com/eZanmoto/seed/internal/value"

// SignalKind distinguishes the four ways running a statement can end
// (spec.md §4.4): falling through normally, or unwinding for break,
// continue, or return.
type SignalKind int

const (
	Normal SignalKind = iota
	Break
	Continue
	Return
)

// Signal is the result of executing a statement: a control-flow marker
// plus, for Return, the value being returned.
type Signal struct {
	Kind  SignalKind
	Value value.Value // meaningful only when Kind == Return
}

var sigNormal = Signal{Kind: Normal}
var sigBreak = Signal{Kind: Break}
var sigContinue = Signal{Kind: Continue}

func sigReturn(v value.Value) Signal {
	return Signal{Kind: Return, Value: v}
}
