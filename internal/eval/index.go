package eval

import (
	"fmt"

	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// indexGet implements `v[i]` reads (spec.md §4.3.3), shared between
// expression evaluation and IndexPlace.
func indexGet(container, key value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	switch c := container.(type) {
	case *value.List:
		i, ok := key.(value.Int)
		if !ok {
			return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "list index must be int")
		}
		idx := int(i)
		if idx < 0 || idx >= len(c.Elems) {
			return nil, verror.NewOutOfRange(verror.IDIndexOutOfRange, pos.Line, pos.Col, fmt.Sprint(idx), fmt.Sprint(len(c.Elems)))
		}
		return c.Elems[idx], nil
	case value.Str:
		i, ok := key.(value.Int)
		if !ok {
			return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "string index must be int")
		}
		idx := int(i)
		if idx < 0 || idx >= len(c) {
			return nil, verror.NewOutOfRange(verror.IDIndexOutOfRange, pos.Line, pos.Col, fmt.Sprint(idx), fmt.Sprint(len(c)))
		}
		return value.Str(c[idx : idx+1]), nil
	case *value.Object:
		k, ok := key.(value.Str)
		if !ok {
			return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "object index must be string")
		}
		v, ok := c.Get(string(k))
		if !ok {
			return nil, verror.NewKeyMissing(string(k), pos.Line, pos.Col)
		}
		return v, nil
	default:
		return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "cannot index a "+container.Type().String())
	}
}

// rangeBounds validates and resolves `a:b` against a sequence of length
// n, applying the omitted-bound defaults from spec.md §4.3.3.
func rangeBounds(startExpr, endExpr *int, n int, pos ast.Pos) (int, int, *verror.Error) {
	start := 0
	if startExpr != nil {
		start = *startExpr
	}
	end := n
	if endExpr != nil {
		end = *endExpr
	}
	if start < 0 || end < start || end > n {
		return 0, 0, verror.NewOutOfRange(verror.IDSliceOutOfRange, pos.Line, pos.Col, fmt.Sprint(start), fmt.Sprint(end), fmt.Sprint(n))
	}
	return start, end, nil
}

// rangeGet implements `v[a:b]` reads for List and Str (spec.md §4.3.3):
// always returns a new value, never a view.
func rangeGet(container value.Value, startExpr, endExpr *int, pos ast.Pos) (value.Value, *verror.Error) {
	switch c := container.(type) {
	case *value.List:
		start, end, err := rangeBounds(startExpr, endExpr, len(c.Elems), pos)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, end-start)
		copy(out, c.Elems[start:end])
		return value.NewList(out), nil
	case value.Str:
		start, end, err := rangeBounds(startExpr, endExpr, len(c), pos)
		if err != nil {
			return nil, err
		}
		return value.Str(c[start:end]), nil
	default:
		return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "cannot slice a "+container.Type().String())
	}
}
