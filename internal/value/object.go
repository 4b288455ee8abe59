package value

import "strings"

// Object is a handle to a mutable, insertion-ordered mapping from string
// keys to values (spec.md §3.1, §4.1). Updating an existing key does not
// move it; inserting a new key appends — implemented with a parallel
// Keys/Values pair rather than a bare Go map, the same "parallel arrays
// preserve order, linear lookup is fine at this scale" shape the teacher
// repo uses for its scope frames.
type Object struct {
	Keys   []string
	Values []Value
}

// NewObject creates an empty Object handle.
func NewObject() *Object {
	return &Object{}
}

func (o *Object) Type() Type { return TypeObject }

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.Keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(Str(k).Quoted())
		sb.WriteString(": ")
		sb.WriteString(nestedString(o.Values[i]))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Get returns the value bound to key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	for i, k := range o.Keys {
		if k == key {
			return o.Values[i], true
		}
	}
	return nil, false
}

// Set inserts or updates key, preserving insertion order on update and
// appending on first insertion (spec.md §4.1).
func (o *Object) Set(key string, v Value) {
	for i, k := range o.Keys {
		if k == key {
			o.Values[i] = v
			return
		}
	}
	o.Keys = append(o.Keys, key)
	o.Values = append(o.Values, v)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key if present, preserving the order of remaining keys.
func (o *Object) Delete(key string) {
	for i, k := range o.Keys {
		if k == key {
			o.Keys = append(o.Keys[:i], o.Keys[i+1:]...)
			o.Values = append(o.Values[:i], o.Values[i+1:]...)
			return
		}
	}
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.Keys) }
