// Package builtin registers the handful of native functions the
// evaluator's global frame starts with. Per spec.md §6, `print` is the
// only core I/O primitive; everything else a script needs comes from the
// language itself or the `->` type-function table (internal/eval).
package builtin

import (
	"fmt"
	"io"

	"github.com/eZanmoto/seed/internal/eval"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// Register declares every builtin into ev's global frame.
func Register(ev *eval.Evaluator) {
	ev.Scope.Declare("print", value.NewNativeFunc("print", printFn(ev.Out)))
}

// printFn writes its one argument's canonical String() form followed by a
// newline, and returns Null — matching the teacher's convention of
// builtins returning a value rather than nothing so they compose inside
// expressions. spec.md §6 defines `print(value)` as single-argument;
// native functions bypass callFunc's arity check, so this enforces it
// itself.
func printFn(out io.Writer) value.NativeFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, verror.NewArityMismatch("print", 1, len(args), 0, 0)
		}
		_, err := fmt.Fprintln(out, args[0].String())
		if err != nil {
			return nil, err
		}
		return value.NullVal, nil
	}
}
