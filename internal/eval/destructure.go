package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// bindPattern is the shared "D" destructuring logic (spec.md §4.3.4):
// list patterns `[p1, p2, ..rest]`, object patterns `{k1, k2: p2, ..rest}`,
// plain identifiers, and `_` discards, used by Declare, Assign, and `for`
// loop targets alike. declare selects Scope.Declare vs Scope.Assign for
// the leaf identifiers.
func (e *Evaluator) bindPattern(pattern ast.Expr, v value.Value, declare bool) *verror.Error {
	switch p := pattern.(type) {
	case *ast.Underscore:
		return nil

	case *ast.Var:
		if declare {
			e.Scope.Declare(p.Name, v)
			return nil
		}
		if !e.Scope.Assign(p.Name, v) {
			return verror.NewNotDefined(p.Name, p.Pos.Line, p.Pos.Col)
		}
		return nil

	case *ast.ListLit:
		return e.bindListPattern(p, v, declare)

	case *ast.ObjectLit:
		return e.bindObjectPattern(p, v, declare)

	default:
		return verror.NewInternal("not a valid assignment target", pattern.Position().Line, pattern.Position().Col)
	}
}

func (e *Evaluator) bindListPattern(p *ast.ListLit, v value.Value, declare bool) *verror.Error {
	lst, ok := v.(*value.List)
	if !ok {
		return verror.NewTypeMismatch(p.Pos.Line, p.Pos.Col, "cannot destructure a "+v.Type().String()+" as a list")
	}
	k := len(p.Items)
	n := len(lst.Elems)
	if n < k {
		return verror.New(verror.CatTypeMismatch, verror.IDTypeMismatch, p.Pos.Line, p.Pos.Col,
			"list pattern requires at least that many elements")
	}
	for i, item := range p.Items {
		if err := e.bindPattern(item.X, lst.Elems[i], declare); err != nil {
			return err
		}
	}
	if p.Collect != "" {
		rest := make([]value.Value, n-k)
		copy(rest, lst.Elems[k:])
		restVal := value.Value(value.NewList(rest))
		if declare {
			e.Scope.Declare(p.Collect, restVal)
		} else if !e.Scope.Assign(p.Collect, restVal) {
			return verror.NewNotDefined(p.Collect, p.Pos.Line, p.Pos.Col)
		}
	}
	return nil
}

func (e *Evaluator) bindObjectPattern(p *ast.ObjectLit, v value.Value, declare bool) *verror.Error {
	obj, ok := v.(*value.Object)
	if !ok {
		return verror.NewTypeMismatch(p.Pos.Line, p.Pos.Col, "cannot destructure a "+v.Type().String()+" as an object")
	}
	matched := make(map[string]bool, len(p.Props))
	for _, prop := range p.Props {
		fv, ok := obj.Get(prop.Key)
		if !ok {
			return verror.NewKeyMissing(prop.Key, p.Pos.Line, p.Pos.Col)
		}
		matched[prop.Key] = true
		if err := e.bindPattern(prop.Value, fv, declare); err != nil {
			return err
		}
	}
	if p.Collect != "" {
		rest := value.NewObject()
		for i, k := range obj.Keys {
			if !matched[k] {
				rest.Set(k, obj.Values[i])
			}
		}
		restVal := value.Value(rest)
		if declare {
			e.Scope.Declare(p.Collect, restVal)
		} else if !e.Scope.Assign(p.Collect, restVal) {
			return verror.NewNotDefined(p.Collect, p.Pos.Line, p.Pos.Col)
		}
	}
	return nil
}

// expandSpreadItems evaluates a list of ListItem (list literal elements
// or call arguments) left to right, inlining spread items (spec.md
// §4.3.4: "spread expansions are inlined into the argument list before
// arity check").
func (e *Evaluator) expandSpreadItems(items []ast.ListItem) ([]value.Value, *verror.Error) {
	out := make([]value.Value, 0, len(items))
	for _, item := range items {
		v, _, err := e.evalExpr(item.X)
		if err != nil {
			return nil, err
		}
		if !item.IsSpread {
			out = append(out, v)
			continue
		}
		lst, ok := v.(*value.List)
		if !ok {
			return nil, verror.NewTypeMismatch(item.X.Position().Line, item.X.Position().Col, "spread '..' requires a list")
		}
		out = append(out, lst.Elems...)
	}
	return out, nil
}
