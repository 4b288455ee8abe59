package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// evalExpr evaluates an expression to a (value, receiver) pair (spec.md
// §4.3.1): receiver is non-nil only immediately after evaluating a `.`
// property access, and is consumed only by an immediately enclosing Call;
// every other expression form evaluates its subexpressions for their value
// alone and returns a nil receiver.
func (e *Evaluator) evalExpr(x ast.Expr) (value.Value, value.Value, *verror.Error) {
	switch n := x.(type) {
	case *ast.NullLit:
		return value.NullVal, nil, nil

	case *ast.BoolLit:
		return value.Bool(n.Value), nil, nil

	case *ast.IntLit:
		return value.Int(n.Value), nil, nil

	case *ast.StrLit:
		return value.Str(n.Value), nil, nil

	case *ast.Var:
		v, ok := e.Scope.Lookup(n.Name)
		if !ok {
			return nil, nil, verror.NewNotDefined(n.Name, n.Pos.Line, n.Pos.Col)
		}
		return v, nil, nil

	case *ast.Underscore:
		return nil, nil, verror.NewInternal("'_' is not a readable expression", n.Pos.Line, n.Pos.Col)

	case *ast.ListLit:
		if n.Collect != "" {
			return nil, nil, verror.NewInternal("'..' collect capture is only valid in a destructuring pattern", n.Pos.Line, n.Pos.Col)
		}
		elems, err := e.expandSpreadItems(n.Items)
		if err != nil {
			return nil, nil, err
		}
		return value.NewList(elems), nil, nil

	case *ast.ObjectLit:
		return e.evalObjectLit(n)

	case *ast.FuncLit:
		fn := value.NewUserFunc("", n.Params, n.Collect, n.Body, e.Scope.Current())
		return fn, nil, nil

	case *ast.Call:
		return e.evalCall(n)

	case *ast.Index:
		container, _, err := e.evalExpr(n.X)
		if err != nil {
			return nil, nil, err
		}
		key, _, err := e.evalExpr(n.Loc)
		if err != nil {
			return nil, nil, err
		}
		v, err := indexGet(container, key, n.Pos)
		return v, nil, err

	case *ast.RangeIndex:
		container, _, err := e.evalExpr(n.X)
		if err != nil {
			return nil, nil, err
		}
		start, end, err := e.evalRangeBounds(n)
		if err != nil {
			return nil, nil, err
		}
		v, err := rangeGet(container, start, end, n.Pos)
		return v, nil, err

	case *ast.PropAccess:
		return e.evalPropAccess(n)

	case *ast.BinaryOp:
		return e.evalBinaryOp(n)

	case *ast.Range:
		start, _, err := e.evalExpr(n.Start)
		if err != nil {
			return nil, nil, err
		}
		end, _, err := e.evalExpr(n.End)
		if err != nil {
			return nil, nil, err
		}
		v, err := evalRange(start, end, n.Pos)
		return v, nil, err

	default:
		pos := x.Position()
		return nil, nil, verror.NewInternal("unhandled expression node", pos.Line, pos.Col)
	}
}

func (e *Evaluator) evalObjectLit(n *ast.ObjectLit) (value.Value, value.Value, *verror.Error) {
	if n.Collect != "" {
		return nil, nil, verror.NewInternal("'..' collect capture is only valid in a destructuring pattern", n.Pos.Line, n.Pos.Col)
	}
	obj := value.NewObject()
	for _, prop := range n.Props {
		if prop.IsSpread {
			v, _, err := e.evalExpr(prop.Value)
			if err != nil {
				return nil, nil, err
			}
			src, ok := v.(*value.Object)
			if !ok {
				return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "spread '..' in object literal requires an object")
			}
			for i, k := range src.Keys {
				obj.Set(k, src.Values[i])
			}
			continue
		}

		key := prop.Key
		if prop.KeyExpr != nil {
			kv, _, err := e.evalExpr(prop.KeyExpr)
			if err != nil {
				return nil, nil, err
			}
			ks, ok := kv.(value.Str)
			if !ok {
				return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "computed object key must be a string")
			}
			key = string(ks)
		}

		v, _, err := e.evalExpr(prop.Value)
		if err != nil {
			return nil, nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil, nil
}

func (e *Evaluator) evalRangeBounds(n *ast.RangeIndex) (*int, *int, *verror.Error) {
	var start, end *int
	if n.Start != nil {
		v, _, err := e.evalExpr(n.Start)
		if err != nil {
			return nil, nil, err
		}
		i, ok := v.(value.Int)
		if !ok {
			return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "slice bound must be int")
		}
		s := int(i)
		start = &s
	}
	if n.End != nil {
		v, _, err := e.evalExpr(n.End)
		if err != nil {
			return nil, nil, err
		}
		i, ok := v.(value.Int)
		if !ok {
			return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "slice bound must be int")
		}
		ee := int(i)
		end = &ee
	}
	return start, end, nil
}

// evalPropAccess implements `.` (attaches a receiver, consumed by an
// enclosing Call) and `->` (dispatches to the type-function table and
// never produces a receiver) per spec.md §4.3.1 and §4.5.
func (e *Evaluator) evalPropAccess(n *ast.PropAccess) (value.Value, value.Value, *verror.Error) {
	base, _, err := e.evalExpr(n.X)
	if err != nil {
		return nil, nil, err
	}

	if n.TypeProp {
		return nil, nil, verror.NewInternal("type-function access must be called", n.Pos.Line, n.Pos.Col)
	}

	obj, ok := base.(*value.Object)
	if !ok {
		return nil, nil, badPropBase(base, n.Pos)
	}
	v, ok := obj.Get(n.Name)
	if !ok {
		return nil, nil, verror.NewKeyMissing(n.Name, n.Pos.Line, n.Pos.Col)
	}
	return v, base, nil
}

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (value.Value, value.Value, *verror.Error) {
	if n.Op == "&&" || n.Op == "||" {
		l, _, err := e.evalExpr(n.LHS)
		if err != nil {
			return nil, nil, err
		}
		lb, ok := l.(value.Bool)
		if !ok {
			return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "operand of '"+n.Op+"' must be bool")
		}
		if n.Op == "&&" && !bool(lb) {
			return value.Bool(false), nil, nil
		}
		if n.Op == "||" && bool(lb) {
			return value.Bool(true), nil, nil
		}
		r, _, err := e.evalExpr(n.RHS)
		if err != nil {
			return nil, nil, err
		}
		rb, ok := r.(value.Bool)
		if !ok {
			return nil, nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "operand of '"+n.Op+"' must be bool")
		}
		return rb, nil, nil
	}

	l, _, err := e.evalExpr(n.LHS)
	if err != nil {
		return nil, nil, err
	}
	r, _, err := e.evalExpr(n.RHS)
	if err != nil {
		return nil, nil, err
	}
	v, err := binaryOp(n.Op, l, r, n.Pos)
	return v, nil, err
}

// evalPlace evaluates x as an l-value target for OpAssign and for Assign
// to an index, range-index or property. Declare, and Assign to a plain
// variable or a list/object pattern, go through bindPattern instead.
func (e *Evaluator) evalPlace(x ast.Expr) (Place, *verror.Error) {
	switch n := x.(type) {
	case *ast.Var:
		return VarPlace{e: e, name: n.Name, pos: n.Pos}, nil

	case *ast.Index:
		container, _, err := e.evalExpr(n.X)
		if err != nil {
			return nil, err
		}
		key, _, err := e.evalExpr(n.Loc)
		if err != nil {
			return nil, err
		}
		return IndexPlace{container: container, key: key, pos: n.Pos}, nil

	case *ast.RangeIndex:
		container, _, err := e.evalExpr(n.X)
		if err != nil {
			return nil, err
		}
		lst, ok := container.(*value.List)
		if !ok {
			return nil, verror.NewTypeMismatch(n.Pos.Line, n.Pos.Col, "range-index assignment target must be a list")
		}
		start, end, err := e.evalRangeBounds(n)
		if err != nil {
			return nil, err
		}
		s, en, err := rangeBounds(start, end, len(lst.Elems), n.Pos)
		if err != nil {
			return nil, err
		}
		return RangeSlicePlace{container: lst, start: s, end: en, pos: n.Pos}, nil

	case *ast.PropAccess:
		base, _, err := e.evalExpr(n.X)
		if err != nil {
			return nil, err
		}
		return PropPlace{container: base, name: n.Name, pos: n.Pos}, nil

	default:
		pos := x.Position()
		return nil, verror.NewInternal("not a valid assignment target", pos.Line, pos.Col)
	}
}
