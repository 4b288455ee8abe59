// Package value implements the runtime value model for seed (spec.md §3.1,
// §4.1): a tagged union of primitives and reference handles, plus
// structural/reference equality and canonical printing.
//
// Values are represented as a Go interface with one concrete type per
// variant rather than a single struct with an `any` payload, the same
// "interface + explicit type switch, no polymorphism" shape the teacher
// repo uses for its own value package.
package value

// Type identifies the dynamic type of a Value.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeStr
	TypeList
	TypeObject
	TypeFunc
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeStr:
		return "string"
	case TypeList:
		return "list"
	case TypeObject:
		return "object"
	case TypeFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Value is any runtime value: Null, Bool, Int, Str (value semantics) or
// *List, *Object, *Func (reference semantics, identity-preserving handles).
type Value interface {
	Type() Type
	String() string // canonical top-level print form, spec.md §4.1
}

// IsReference reports whether v has reference semantics (List/Object/Func).
func IsReference(v Value) bool {
	switch v.Type() {
	case TypeList, TypeObject, TypeFunc:
		return true
	default:
		return false
	}
}
