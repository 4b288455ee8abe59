// Package scope implements the "S" scope-chain component from spec.md
// §4.2: declare/assign/lookup over a chain of frames, plus the push/pop
// operations the statement and expression evaluators drive directly.
//
// The chain is backed by an append-only arena of frames (internal/frame),
// addressed by index rather than pointer, so a closure can capture "the
// frame active when this function was defined" as a plain int and survive
// the arena growing underneath it — the index-handle design spec.md §9
// recommends to sidestep the frame<->closure reference cycle.
package scope

import (
	"github.com/eZanmoto/seed/internal/frame"
	"github.com/eZanmoto/seed/internal/value"
)

// Scope owns the frame arena and the currently active frame chain.
type Scope struct {
	arena   []*frame.Frame
	current int // index into arena of the active frame
}

// New creates a Scope with a single global frame.
func New() *Scope {
	global := frame.New(-1)
	global.Name = "(global)"
	return &Scope{arena: []*frame.Frame{global}, current: 0}
}

// Current returns the index of the active frame.
func (s *Scope) Current() int { return s.current }

// Frame returns the frame at idx for direct inspection (builtins
// registering into the global frame, diagnostics).
func (s *Scope) Frame(idx int) *frame.Frame { return s.arena[idx] }

// register appends f to the arena and returns its index.
func (s *Scope) register(f *frame.Frame) int {
	s.arena = append(s.arena, f)
	return len(s.arena) - 1
}

// PushChild enters a new child frame of the current frame (spec.md §3.2:
// block statements create a child frame with the current frame as
// parent) and returns its index. To leave it, the caller saves Current()
// beforehand and passes that index to PopTo.
func (s *Scope) PushChild() int {
	idx := s.register(frame.New(s.current))
	s.current = idx
	return idx
}

// PushFuncFrame enters a new frame whose parent is capturedParent — the
// definition-site frame of the function being invoked, not the call-site
// frame (spec.md §3.2: function invocation is lexically, not dynamically,
// scoped).
func (s *Scope) PushFuncFrame(capturedParent int, capacity int) int {
	idx := s.register(frame.NewWithCapacity(capturedParent, capacity))
	s.current = idx
	return idx
}

// PopTo restores the active frame to idx, used after a block or call
// exits (spec.md §3.2: exiting a block drops its child frame — the frame
// itself stays in the arena in case a closure captured it, but it's no
// longer on the active chain).
func (s *Scope) PopTo(idx int) {
	s.current = idx
}

// Declare introduces name in the current frame, shadowing any existing
// binding there (spec.md §3.2, `:=`).
func (s *Scope) Declare(name string, v value.Value) {
	s.arena[s.current].Declare(name, v)
}

// DeclareIn introduces name in the frame at idx rather than the current
// one; used for binding function parameters into the newly pushed call
// frame before its body starts executing with that frame current.
func (s *Scope) DeclareIn(idx int, name string, v value.Value) {
	s.arena[idx].Declare(name, v)
}

// Assign walks outward from the current frame to the nearest enclosing
// frame that already binds name and mutates that slot (spec.md §3.2,
// `=`). ok is false if no such frame exists.
func (s *Scope) Assign(name string, v value.Value) bool {
	idx := s.current
	for idx != -1 {
		f := s.arena[idx]
		if f.Set(name, v) {
			return true
		}
		idx = f.Parent
	}
	return false
}

// Lookup walks outward from the current frame for name, same traversal
// as Assign (spec.md §3.2, variable reads).
func (s *Scope) Lookup(name string) (value.Value, bool) {
	idx := s.current
	for idx != -1 {
		f := s.arena[idx]
		if v, ok := f.Get(name); ok {
			return v, true
		}
		idx = f.Parent
	}
	return nil, false
}
