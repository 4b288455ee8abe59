package eval

import (
	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// typeFn is one entry in the type-function table (spec.md §4.5, the "T"
// component): a function dispatched on a value's dynamic type via `->`.
type typeFn func(receiver value.Value, args []value.Value, pos ast.Pos) (value.Value, *verror.Error)

// typeFns is the registry of type functions, keyed by name the same way
// the teacher repo keys its native-function registry: a plain map
// populated once at package load and looked up at call time. Which types
// a name applies to is decided separately by typeFnApplicable, so adding
// a type function takes an entry here and a case there.
var typeFns = map[string]typeFn{
	"type": fnType,
	"len":  fnLen,
}

// typeFnApplicable reports whether name is defined for t; "type" is
// defined for every type, "len" only for Str (spec.md §4.5).
func typeFnApplicable(name string, t value.Type) bool {
	switch name {
	case "type":
		return true
	case "len":
		return t == value.TypeStr
	default:
		return false
	}
}

// dispatchTypeFn implements `v->name(args)`.
func dispatchTypeFn(v value.Value, name string, args []value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	fn, ok := typeFns[name]
	if !ok || !typeFnApplicable(name, v.Type()) {
		return nil, verror.New(verror.CatTypeMismatch, verror.IDNoTypeFunction, pos.Line, pos.Col, name, v.Type().String())
	}
	return fn(v, args, pos)
}

func fnType(receiver value.Value, args []value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	if len(args) != 0 {
		return nil, verror.NewArityMismatch("type", 0, len(args), pos.Line, pos.Col)
	}
	return value.Str(receiver.Type().String()), nil
}

func fnLen(receiver value.Value, args []value.Value, pos ast.Pos) (value.Value, *verror.Error) {
	if len(args) != 0 {
		return nil, verror.NewArityMismatch("len", 0, len(args), pos.Line, pos.Col)
	}
	s := receiver.(value.Str)
	return value.Int(len(s)), nil
}
