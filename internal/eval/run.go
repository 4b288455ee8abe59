package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// RunTop executes stmts directly in the evaluator's current frame, with
// no child-frame push/pop around the whole sequence — unlike execBlock,
// which is for nested block statements. This is what the REPL and script
// runner drive: declarations made by one top-level statement must be
// visible to the next (spec.md §3.2 extended to the top level), and the
// value of a bare top-level expression statement is reported back to the
// caller (used for `-c` and REPL echoing).
func (e *Evaluator) RunTop(stmts []ast.Stmt) (value.Value, *verror.Error) {
	last := value.Value(value.NullVal)
	for _, stmt := range stmts {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			v, _, err := e.evalExpr(es.X)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		sig, err := e.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if sig.Kind == Return {
			return sig.Value, nil
		}
		last = value.NullVal
	}
	return last, nil
}
