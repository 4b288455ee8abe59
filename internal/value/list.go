package value

import "strings"

// List is a handle to a mutable, ordered sequence of values (spec.md
// §3.1). Copying a Value holding *List copies the pointer, not the
// contents, giving reference semantics for free.
type List struct {
	Elems []Value
}

// NewList creates a List handle wrapping elems (not copied).
func NewList(elems []Value) *List {
	if elems == nil {
		elems = []Value{}
	}
	return &List{Elems: elems}
}

func (l *List) Type() Type { return TypeList }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.Elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(nestedString(e))
	}
	sb.WriteByte(']')
	return sb.String()
}

// nestedString renders v the way it appears inside a List/Object: strings
// are quoted, everything else uses its own canonical form (spec.md §4.1).
func nestedString(v Value) string {
	if s, ok := v.(Str); ok {
		return s.Quoted()
	}
	return v.String()
}
