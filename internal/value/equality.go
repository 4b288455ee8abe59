package value

// Equal implements `==`: structural equality (spec.md §3.1). Primitives
// compare by contents; List/Object compare elementwise/keywise; Func has
// no structural comparison, so `func == func` is reference equality (the
// same handle). Cross-type comparisons are always false, never an error.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		bv := b.(Bool)
		return av == bv
	case Int:
		bv := b.(Int)
		return av == bv
	case Str:
		bv := b.(Str)
		return av == bv
	case *List:
		bv := b.(*List)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for i, k := range av.Keys {
			bval, ok := bv.Get(k)
			if !ok || !Equal(av.Values[i], bval) {
				return false
			}
		}
		return true
	case *Func:
		bv := b.(*Func)
		return av == bv // functions are equal only by identity
	default:
		return false
	}
}

// Identical implements `===`: reference identity for List/Object/Func,
// and is equivalent to Equal for primitives (spec.md §3.1).
func Identical(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *List:
		return av == b.(*List)
	case *Object:
		return av == b.(*Object)
	case *Func:
		return av == b.(*Func)
	default:
		return Equal(a, b)
	}
}
