// Package frame implements the variable binding system for seed
// (spec.md §3.2, §4.2, the "S" scope-chain component).
//
// A Frame maps identifiers to slots holding one value each, plus a parent
// link expressed as an index rather than a pointer so closures can capture
// a definition-site frame by index into an append-only arena — the design
// spec.md §9 recommends and the one this package's previous incarnation
// already used for a different language's scoping rules.
//
// Frame.Get/Set/Declare only ever touch the frame's own bindings; walking
// the parent chain to implement declare/assign/lookup semantics is the
// scope chain's job (see internal/scope), not this package's.
package frame

import "github.com/eZanmoto/seed/internal/value"

// Frame is one level of the lexical scope chain.
type Frame struct {
	Words  []string      // identifiers, parallel to Values
	Values []value.Value // bound values, parallel to Words
	Parent int           // index of the parent frame in the arena; -1 if none
	Name   string        // optional name for diagnostics (function name, "(block)")
}

// New creates an empty frame with the given parent arena index.
func New(parent int) *Frame {
	return &Frame{Parent: parent}
}

// NewWithCapacity preallocates room for capacity bindings, useful for
// function call frames where the parameter count is already known.
func NewWithCapacity(parent, capacity int) *Frame {
	return &Frame{
		Words:  make([]string, 0, capacity),
		Values: make([]value.Value, 0, capacity),
		Parent: parent,
	}
}

// Declare introduces name as a new binding in this frame, or replaces the
// existing binding if name is already bound here (spec.md §3.2: `:=`
// always succeeds and shadows rather than erroring).
func (f *Frame) Declare(name string, v value.Value) {
	for i, w := range f.Words {
		if w == name {
			f.Values[i] = v
			return
		}
	}
	f.Words = append(f.Words, name)
	f.Values = append(f.Values, v)
}

// Get returns the value bound to name in this frame only (no parent
// traversal).
func (f *Frame) Get(name string) (value.Value, bool) {
	for i, w := range f.Words {
		if w == name {
			return f.Values[i], true
		}
	}
	return nil, false
}

// Set updates an existing binding in this frame and reports whether name
// was found. It never creates a new binding; that is Declare's job.
func (f *Frame) Set(name string, v value.Value) bool {
	for i, w := range f.Words {
		if w == name {
			f.Values[i] = v
			return true
		}
	}
	return false
}

// Has reports whether name is bound in this frame.
func (f *Frame) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}
