package eval

import (
	"math"

	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// binaryOp implements spec.md §4.3.2. Short-circuit operators (&&, ||)
// are handled by the caller before evaluating rhs; this function covers
// the remaining operators once both operand values are in hand.
func binaryOp(op string, l, r value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	switch op {
	case "+":
		return opAdd(l, r, pos)
	case "-", "*", "/", "%":
		return opArith(op, l, r, pos)
	case "==":
		return value.Bool(value.Equal(l, r)), nil
	case "!=":
		return value.Bool(!value.Equal(l, r)), nil
	case "===":
		return value.Bool(value.Identical(l, r)), nil
	case "<", "<=", ">", ">=":
		return opCompare(op, l, r, pos)
	default:
		return nil, verror.NewInternal("unknown operator "+op, pos.Line, pos.Col)
	}
}

func opAdd(l, r value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	switch lv := l.(type) {
	case value.Int:
		rv, ok := r.(value.Int)
		if !ok {
			return nil, typeMismatchBinop("+", l, r, pos)
		}
		sum := int64(lv) + int64(rv)
		if (rv > 0 && sum < int64(lv)) || (rv < 0 && sum > int64(lv)) {
			return nil, verror.New(verror.CatTypeMismatch, verror.IDTypeMismatch, pos.Line, pos.Col, "integer overflow in +")
		}
		return value.Int(sum), nil
	case value.Str:
		rv, ok := r.(value.Str)
		if !ok {
			return nil, typeMismatchBinop("+", l, r, pos)
		}
		return lv + rv, nil
	case *value.List:
		rv, ok := r.(*value.List)
		if !ok {
			return nil, typeMismatchBinop("+", l, r, pos)
		}
		out := make([]value.Value, 0, len(lv.Elems)+len(rv.Elems))
		out = append(out, lv.Elems...)
		out = append(out, rv.Elems...)
		return value.NewList(out), nil
	default:
		return nil, typeMismatchBinop("+", l, r, pos)
	}
}

func opArith(op string, l, r value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	lv, ok1 := l.(value.Int)
	rv, ok2 := r.(value.Int)
	if !ok1 || !ok2 {
		return nil, typeMismatchBinop(op, l, r, pos)
	}
	a, b := int64(lv), int64(rv)
	switch op {
	case "-":
		diff := a - b
		if (b < 0 && diff < a) || (b > 0 && diff > a) {
			return nil, verror.New(verror.CatTypeMismatch, verror.IDTypeMismatch, pos.Line, pos.Col, "integer overflow in -")
		}
		return value.Int(diff), nil
	case "*":
		if a != 0 && b != 0 {
			prod := a * b
			if prod/a != b || (a == -1 && b == math.MinInt64) {
				return nil, verror.New(verror.CatTypeMismatch, verror.IDTypeMismatch, pos.Line, pos.Col, "integer overflow in *")
			}
			return value.Int(prod), nil
		}
		return value.Int(0), nil
	case "/":
		if b == 0 {
			return nil, verror.NewDivideByZero("division", pos.Line, pos.Col)
		}
		return value.Int(a / b), nil // Go's / truncates toward zero
	case "%":
		if b == 0 {
			return nil, verror.NewDivideByZero("modulus", pos.Line, pos.Col)
		}
		return value.Int(a % b), nil // Go's % follows the sign of the dividend
	default:
		return nil, verror.NewInternal("unknown arithmetic operator "+op, pos.Line, pos.Col)
	}
}

func opCompare(op string, l, r value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	switch lv := l.(type) {
	case value.Int:
		rv, ok := r.(value.Int)
		if !ok {
			return nil, typeMismatchBinop(op, l, r, pos)
		}
		return value.Bool(compareOrdered(op, int64(lv), int64(rv))), nil
	case value.Str:
		rv, ok := r.(value.Str)
		if !ok {
			return nil, typeMismatchBinop(op, l, r, pos)
		}
		return value.Bool(compareStr(op, string(lv), string(rv))), nil
	default:
		return nil, typeMismatchBinop(op, l, r, pos)
	}
}

func compareOrdered(op string, a, b int64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func compareStr(op string, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func typeMismatchBinop(op string, l, r value.Value, pos ast.Pos) *verror.Error {
	return verror.NewTypeMismatch(pos.Line, pos.Col, "operator '"+op+"' not defined for "+l.Type().String()+" and "+r.Type().String())
}

// evalRange implements `start..end` (spec.md §4.3.2): Int..Int produces a
// new list [start, start+1, ..., end-1], empty if start >= end.
func evalRange(start, end value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	s, ok1 := start.(value.Int)
	e, ok2 := end.(value.Int)
	if !ok1 || !ok2 {
		return nil, verror.NewTypeMismatch(pos.Line, pos.Col, "range bounds must be int")
	}
	if s >= e {
		return value.NewList(nil), nil
	}
	out := make([]value.Value, 0, int(e-s))
	for i := s; i < e; i++ {
		out = append(out, value.Int(i))
	}
	return value.NewList(out), nil
}
