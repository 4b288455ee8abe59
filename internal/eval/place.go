package eval

import (
	"fmt"

	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

// Place is an addressable l-value target (spec.md §9): a variable, an
// object property, a list/string/object index, or a list slice. Places
// are a closed tagged union rather than pointers or closures, so
// OpAssign can read-then-write through the exact same target without
// re-evaluating the subscript expression (spec.md §4.3, OpAssign
// atomicity).
type Place interface {
	Get() (value.Value, *verror.Error)
	Set(v value.Value) *verror.Error
}

// VarPlace targets a named slot reached by walking the scope chain.
type VarPlace struct {
	e    *Evaluator
	name string
	pos  ast.Pos
}

func (p VarPlace) Get() (value.Value, *verror.Error) {
	v, ok := p.e.Scope.Lookup(p.name)
	if !ok {
		return nil, verror.NewNotDefined(p.name, p.pos.Line, p.pos.Col)
	}
	return v, nil
}

func (p VarPlace) Set(v value.Value) *verror.Error {
	if !p.e.Scope.Assign(p.name, v) {
		return verror.NewNotDefined(p.name, p.pos.Line, p.pos.Col)
	}
	return nil
}

// IndexPlace targets `container[key]` for a List (Int key) or Object
// (Str key).
type IndexPlace struct {
	container value.Value
	key       value.Value
	pos       ast.Pos
}

func (p IndexPlace) Get() (value.Value, *verror.Error) {
	return indexGet(p.container, p.key, p.pos)
}

// Set writes through container[key]. A Null container (e.g. `this[k] = v`
// with a stripped receiver, rule §4.3.1(5)) is a no-op for the same reason
// PropPlace.Set treats it as one.
func (p IndexPlace) Set(v value.Value) *verror.Error {
	if p.container.Type() == value.TypeNull {
		return nil
	}
	switch c := p.container.(type) {
	case *value.List:
		i, ok := p.key.(value.Int)
		if !ok {
			return verror.NewTypeMismatch(p.pos.Line, p.pos.Col, "list index must be int")
		}
		idx := int(i)
		if idx < 0 || idx >= len(c.Elems) {
			return verror.NewOutOfRange(verror.IDIndexOutOfRange, p.pos.Line, p.pos.Col, fmt.Sprint(idx), fmt.Sprint(len(c.Elems)))
		}
		c.Elems[idx] = v
		return nil
	case *value.Object:
		k, ok := p.key.(value.Str)
		if !ok {
			return verror.NewTypeMismatch(p.pos.Line, p.pos.Col, "object key must be string")
		}
		c.Set(string(k), v)
		return nil
	default:
		return verror.NewTypeMismatch(p.pos.Line, p.pos.Col, "cannot index-assign a "+c.Type().String())
	}
}

// RangeSlicePlace targets `list[a:b]`, replacing the slice in place
// (spec.md §4.3.3); rhs may be a List or Str.
type RangeSlicePlace struct {
	container *value.List
	start     int
	end       int
	pos       ast.Pos
}

func (p RangeSlicePlace) Get() (value.Value, *verror.Error) {
	out := make([]value.Value, p.end-p.start)
	copy(out, p.container.Elems[p.start:p.end])
	return value.NewList(out), nil
}

func (p RangeSlicePlace) Set(v value.Value) *verror.Error {
	var repl []value.Value
	switch rv := v.(type) {
	case *value.List:
		repl = make([]value.Value, len(rv.Elems))
		copy(repl, rv.Elems)
	case value.Str:
		repl = make([]value.Value, len(rv))
		for i := 0; i < len(rv); i++ {
			repl[i] = value.Str(rv[i : i+1])
		}
	default:
		return verror.NewTypeMismatch(p.pos.Line, p.pos.Col, "range-index assignment requires a list or string")
	}
	elems := p.container.Elems
	merged := make([]value.Value, 0, len(elems)-(p.end-p.start)+len(repl))
	merged = append(merged, elems[:p.start]...)
	merged = append(merged, repl...)
	merged = append(merged, elems[p.end:]...)
	p.container.Elems = merged
	return nil
}

// PropPlace targets `container.name` (spec.md §4.3.3: object assignment
// creates the key if absent, updates in place if present).
type PropPlace struct {
	container value.Value
	name      string
	pos       ast.Pos
}

func (p PropPlace) Get() (value.Value, *verror.Error) {
	obj, ok := p.container.(*value.Object)
	if !ok {
		return nil, badPropBase(p.container, p.pos)
	}
	v, ok := obj.Get(p.name)
	if !ok {
		return nil, verror.NewKeyMissing(p.name, p.pos.Line, p.pos.Col)
	}
	return v, nil
}

// Set writes through the property. A Null container is the stripped-
// receiver case (rule §4.3.1(5): `this` is Null when a method value was
// detached from its object) and is a no-op rather than a BadReceiver
// error, so a detached setter can still run to completion (spec.md §8
// scenario 2) without mutating anything.
func (p PropPlace) Set(v value.Value) *verror.Error {
	if p.container.Type() == value.TypeNull {
		return nil
	}
	obj, ok := p.container.(*value.Object)
	if !ok {
		return badPropBase(p.container, p.pos)
	}
	obj.Set(p.name, v)
	return nil
}

func badPropBase(base value.Value, pos ast.Pos) *verror.Error {
	if base.Type() == value.TypeNull {
		return verror.NewBadReceiver("?", pos.Line, pos.Col)
	}
	return verror.NewTypeMismatch(pos.Line, pos.Col, "cannot access property of a "+base.Type().String())
}
