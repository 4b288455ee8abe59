package scope

import (
	"testing"

	"github.com/eZanmoto/seed/internal/value"
)

func TestDeclareShadowsInChildFrame(t *testing.T) {
	s := New()
	s.Declare("n", value.Int(1))

	child := s.PushChild()
	s.Declare("n", value.Int(2))
	got, _ := s.Lookup("n")
	if got != value.Int(2) {
		t.Errorf("in child frame, got %v, want Int(2)", got)
	}

	s.PopTo(0)
	got, _ = s.Lookup("n")
	if got != value.Int(1) {
		t.Errorf("after PopTo outer frame, got %v, want Int(1)", got)
	}
	_ = child
}

func TestAssignMutatesOuterFrame(t *testing.T) {
	s := New()
	s.Declare("n", value.Int(1))
	s.PushChild()

	if !s.Assign("n", value.Int(5)) {
		t.Fatalf("Assign should find n in the outer frame")
	}
	s.PopTo(0)
	got, _ := s.Lookup("n")
	if got != value.Int(5) {
		t.Errorf("got %v, want Int(5)", got)
	}
}

func TestAssignUndeclaredReturnsFalse(t *testing.T) {
	s := New()
	if s.Assign("missing", value.Int(1)) {
		t.Fatalf("Assign on an undeclared name should return false")
	}
}

func TestPushFuncFrameUsesCapturedParentNotCallSite(t *testing.T) {
	s := New()
	s.Declare("outer", value.Int(10))
	defFrame := s.PushChild() // the function's definition-site frame
	s.PopTo(0)

	s.PushChild() // an unrelated call-site frame, sibling of defFrame
	s.Declare("outer", value.Int(999))

	funcFrame := s.PushFuncFrame(defFrame, 1)
	_ = funcFrame
	got, ok := s.Lookup("outer")
	if !ok || got != value.Int(10) {
		t.Errorf("got %v, %v, want Int(10), true (lexical, not dynamic, scoping)", got, ok)
	}
}

func TestLookupMissingNameIsNotFound(t *testing.T) {
	s := New()
	_, ok := s.Lookup("missing")
	if ok {
		t.Errorf("expected Lookup to report not found")
	}
}
