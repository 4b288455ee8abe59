package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// execBlock pushes a child frame (spec.md §3.2: every block gets its own
// frame), runs each statement in order, and restores the enclosing frame
// before returning, whatever the outcome.
func (e *Evaluator) execBlock(b *ast.Block) (Signal, *verror.Error) {
	saved := e.Scope.Current()
	e.Scope.PushChild()
	defer e.Scope.PopTo(saved)

	for _, stmt := range b.Stmts {
		sig, err := e.execStmt(stmt)
		if err != nil {
			return sigNormal, err
		}
		if sig.Kind != Normal {
			return sig, nil
		}
	}
	return sigNormal, nil
}

func (e *Evaluator) execStmt(s ast.Stmt) (Signal, *verror.Error) {
	switch n := s.(type) {
	case *ast.Block:
		return e.execBlock(n)

	case *ast.ExprStmt:
		_, _, err := e.evalExpr(n.X)
		return sigNormal, err

	case *ast.Declare:
		rhs, _, err := e.evalExpr(n.RHS)
		if err != nil {
			return sigNormal, err
		}
		return sigNormal, e.bindPattern(n.LHS, rhs, true)

	case *ast.Assign:
		return e.execAssign(n)

	case *ast.OpAssign:
		return e.execOpAssign(n)

	case *ast.If:
		return e.execIf(n)

	case *ast.While:
		return e.execWhile(n)

	case *ast.For:
		return e.execFor(n)

	case *ast.Break:
		if e.loopDepth == 0 {
			return sigNormal, verror.NewBadControlFlow(verror.IDBreakOutsideLoop, n.Pos.Line, n.Pos.Col)
		}
		return sigBreak, nil

	case *ast.Continue:
		if e.loopDepth == 0 {
			return sigNormal, verror.NewBadControlFlow(verror.IDContinueOutsideLoop, n.Pos.Line, n.Pos.Col)
		}
		return sigContinue, nil

	case *ast.Return:
		if e.callDepth == 0 {
			return sigNormal, verror.NewBadControlFlow(verror.IDReturnOutsideFunc, n.Pos.Line, n.Pos.Col)
		}
		if n.X == nil {
			return sigReturn(value.NullVal), nil
		}
		v, _, err := e.evalExpr(n.X)
		if err != nil {
			return sigNormal, err
		}
		return sigReturn(v), nil

	case *ast.FuncDecl:
		fn := value.NewUserFunc(n.Name, n.Params, n.Collect, n.Body, e.Scope.Current())
		e.Scope.Declare(n.Name, fn)
		return sigNormal, nil

	default:
		pos := s.Position()
		return sigNormal, verror.NewInternal("unhandled statement node", pos.Line, pos.Col)
	}
}

func (e *Evaluator) execAssign(n *ast.Assign) (Signal, *verror.Error) {
	rhs, _, err := e.evalExpr(n.RHS)
	if err != nil {
		return sigNormal, err
	}
	switch n.LHS.(type) {
	case *ast.Var, *ast.ListLit, *ast.ObjectLit, *ast.Underscore:
		return sigNormal, e.bindPattern(n.LHS, rhs, false)
	default:
		place, err := e.evalPlace(n.LHS)
		if err != nil {
			return sigNormal, err
		}
		return sigNormal, place.Set(rhs)
	}
}

// execOpAssign evaluates the l-value place exactly once (spec.md §4.3:
// OpAssign reads and writes through the same target without re-running
// any index/property subexpression twice).
func (e *Evaluator) execOpAssign(n *ast.OpAssign) (Signal, *verror.Error) {
	place, err := e.evalPlace(n.LHS)
	if err != nil {
		return sigNormal, err
	}
	old, err := place.Get()
	if err != nil {
		return sigNormal, err
	}
	rhs, _, err := e.evalExpr(n.RHS)
	if err != nil {
		return sigNormal, err
	}
	updated, err := binaryOp(n.Op, old, rhs, n.Pos)
	if err != nil {
		return sigNormal, err
	}
	return sigNormal, place.Set(updated)
}

func (e *Evaluator) execIf(n *ast.If) (Signal, *verror.Error) {
	for _, branch := range n.Branches {
		cv, _, err := e.evalExpr(branch.Cond)
		if err != nil {
			return sigNormal, err
		}
		b, ok := cv.(value.Bool)
		if !ok {
			return sigNormal, verror.New(verror.CatTypeMismatch, verror.IDNotBool, n.Pos.Line, n.Pos.Col, cv.Type().String())
		}
		if bool(b) {
			return e.execBlock(branch.Body)
		}
	}
	if n.Else != nil {
		return e.execBlock(n.Else)
	}
	return sigNormal, nil
}

func (e *Evaluator) execWhile(n *ast.While) (Signal, *verror.Error) {
	e.loopDepth++
	defer func() { e.loopDepth-- }()

	for {
		cv, _, err := e.evalExpr(n.Cond)
		if err != nil {
			return sigNormal, err
		}
		b, ok := cv.(value.Bool)
		if !ok {
			return sigNormal, verror.New(verror.CatTypeMismatch, verror.IDNotBool, n.Pos.Line, n.Pos.Col, cv.Type().String())
		}
		if !bool(b) {
			return sigNormal, nil
		}
		sig, err := e.execBlock(n.Body)
		if err != nil {
			return sigNormal, err
		}
		switch sig.Kind {
		case Break:
			return sigNormal, nil
		case Return:
			return sig, nil
		}
	}
}

// execFor implements spec.md §4.4 iteration: List elements, Str bytes (as
// 1-byte Str values), or Object [key, value] pairs, bound each iteration
// via the shared destructuring logic.
func (e *Evaluator) execFor(n *ast.For) (Signal, *verror.Error) {
	iterVal, _, err := e.evalExpr(n.Iter)
	if err != nil {
		return sigNormal, err
	}

	var items []value.Value
	switch c := iterVal.(type) {
	case *value.List:
		items = c.Elems
	case value.Str:
		items = make([]value.Value, len(c))
		for i := 0; i < len(c); i++ {
			items[i] = value.Str(c[i : i+1])
		}
	case *value.Object:
		items = make([]value.Value, len(c.Keys))
		for i, k := range c.Keys {
			items[i] = value.NewList([]value.Value{value.Str(k), c.Values[i]})
		}
	default:
		return sigNormal, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "cannot iterate a "+iterVal.Type().String())
	}

	e.loopDepth++
	defer func() { e.loopDepth-- }()

	saved := e.Scope.Current()
	for _, item := range items {
		e.Scope.PushChild()
		bindErr := e.bindPattern(n.Pattern, item, true)
		if bindErr != nil {
			e.Scope.PopTo(saved)
			return sigNormal, bindErr
		}
		sig, err := e.execBlock(n.Body)
		e.Scope.PopTo(saved)
		if err != nil {
			return sigNormal, err
		}
		switch sig.Kind {
		case Break:
			return sigNormal, nil
		case Return:
			return sig, nil
		}
	}
	return sigNormal, nil
}
