package eval

import (
	"testing"

	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

func TestDispatchTypeFnType(t *testing.T) {
	got, err := dispatchTypeFn(value.Int(5), "type", nil, zeroPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Str("int") {
		t.Errorf("got %v, want Str(\"int\")", got)
	}
}

func TestDispatchTypeFnLenOnString(t *testing.T) {
	got, err := dispatchTypeFn(value.Str("hello"), "len", nil, zeroPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != value.Int(5) {
		t.Errorf("got %v, want Int(5)", got)
	}
}

func TestDispatchTypeFnLenNotApplicableToInt(t *testing.T) {
	_, err := dispatchTypeFn(value.Int(5), "len", nil, zeroPos)
	if err == nil || err.ID != verror.IDNoTypeFunction {
		t.Fatalf("expected NoTypeFunction error, got %v", err)
	}
}

func TestDispatchTypeFnUnknownName(t *testing.T) {
	_, err := dispatchTypeFn(value.Int(5), "nope", nil, zeroPos)
	if err == nil || err.ID != verror.IDNoTypeFunction {
		t.Fatalf("expected NoTypeFunction error, got %v", err)
	}
}

func TestDispatchTypeFnArityMismatch(t *testing.T) {
	_, err := dispatchTypeFn(value.Int(5), "type", []value.Value{value.Int(1)}, zeroPos)
	if err == nil || err.Category != verror.CatArityMismatch {
		t.Fatalf("expected ArityMismatch error, got %v", err)
	}
}
