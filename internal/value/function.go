package value

import (
	"fmt"

	"github.com/eZanmoto/seed/internal/ast"
)

// Func is a handle to an immutable function descriptor (spec.md §3.1).
// A Func value is never paired with a permanently bound receiver: the
// receiver is a call-time binding threaded through expression evaluation
// (spec.md §4.3.1), not a property stored here.
type Func struct {
	Name    string     // declared name, "" for anonymous function literals
	Params  []string   // positional parameter names
	Collect string     // trailing `..name` collect parameter, "" if none
	Body    *ast.Block // nil for natives
	Closure int        // captured definition-site frame index; -1 for natives

	Native NativeFn // non-nil for builtins; Body/Closure unused
}

// NativeFn is the signature of a builtin implemented in Go.
type NativeFn func(args []Value) (Value, error)

// NewUserFunc creates a user-defined function value.
func NewUserFunc(name string, params []string, collect string, body *ast.Block, closure int) *Func {
	return &Func{Name: name, Params: params, Collect: collect, Body: body, Closure: closure}
}

// NewNativeFunc creates a builtin function value.
func NewNativeFunc(name string, fn NativeFn) *Func {
	return &Func{Name: name, Closure: -1, Native: fn}
}

func (f *Func) Type() Type { return TypeFunc }

func (f *Func) String() string {
	if f.Name == "" {
		return fmt.Sprintf("func[anonymous/%d]", len(f.Params))
	}
	return fmt.Sprintf("func[%s/%d]", f.Name, len(f.Params))
}

// IsNative reports whether f is implemented in Go rather than as a
// user-defined function with a block body.
func (f *Func) IsNative() bool { return f.Native != nil }
