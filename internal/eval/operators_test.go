package eval

import (
	"math"
	"testing"

	"github.com/eZanmoto/seed/internal/ast"
	"github.com/eZanmoto/seed/internal/value"
	"github.com/eZanmoto/seed/internal/verror"
)

var zeroPos = ast.Pos{Line: 1, Col: 1}

func TestBinaryOpArithmetic(t *testing.T) {
	tests := []struct {
		op   string
		l, r value.Value
		want value.Value
	}{
		{"+", value.Int(2), value.Int(3), value.Int(5)},
		{"-", value.Int(5), value.Int(3), value.Int(2)},
		{"*", value.Int(4), value.Int(3), value.Int(12)},
		{"/", value.Int(7), value.Int(2), value.Int(3)},
		{"%", value.Int(7), value.Int(2), value.Int(1)},
		{"+", value.Str("a"), value.Str("b"), value.Str("ab")},
	}
	for _, tc := range tests {
		got, err := binaryOp(tc.op, tc.l, tc.r, zeroPos)
		if err != nil {
			t.Fatalf("binaryOp(%q): unexpected error: %v", tc.op, err)
		}
		if got != tc.want {
			t.Errorf("binaryOp(%q, %v, %v) = %v, want %v", tc.op, tc.l, tc.r, got, tc.want)
		}
	}
}

func TestBinaryOpDivideByZero(t *testing.T) {
	_, err := binaryOp("/", value.Int(1), value.Int(0), zeroPos)
	if err == nil || err.Category != verror.CatDivideByZero {
		t.Fatalf("expected DivideByZero error, got %v", err)
	}
	_, err = binaryOp("%", value.Int(1), value.Int(0), zeroPos)
	if err == nil || err.Category != verror.CatDivideByZero {
		t.Fatalf("expected DivideByZero error for %%, got %v", err)
	}
}

func TestOpAddTypeMismatch(t *testing.T) {
	_, err := binaryOp("+", value.Int(1), value.Str("a"), zeroPos)
	if err == nil || err.Category != verror.CatTypeMismatch {
		t.Fatalf("expected TypeMismatch error, got %v", err)
	}
}

func TestOpAddListConcatenation(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1)})
	r := value.NewList([]value.Value{value.Int(2), value.Int(3)})
	got, err := binaryOp("+", l, r, zeroPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[1, 2, 3]" {
		t.Errorf("got %q, want %q", got.String(), "[1, 2, 3]")
	}
}

func TestIntArithmeticOverflow(t *testing.T) {
	_, err := binaryOp("+", value.Int(math.MaxInt64), value.Int(1), zeroPos)
	if err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestBinaryOpComparisons(t *testing.T) {
	tests := []struct {
		op   string
		l, r value.Value
		want bool
	}{
		{"<", value.Int(1), value.Int(2), true},
		{"<=", value.Int(2), value.Int(2), true},
		{">", value.Int(3), value.Int(2), true},
		{">=", value.Int(2), value.Int(3), false},
		{"<", value.Str("a"), value.Str("b"), true},
	}
	for _, tc := range tests {
		got, err := binaryOp(tc.op, tc.l, tc.r, zeroPos)
		if err != nil {
			t.Fatalf("binaryOp(%q): unexpected error: %v", tc.op, err)
		}
		if bool(got.(value.Bool)) != tc.want {
			t.Errorf("binaryOp(%q, %v, %v) = %v, want %v", tc.op, tc.l, tc.r, got, tc.want)
		}
	}
}

func TestBinaryOpEqualityOperators(t *testing.T) {
	a := value.NewList([]value.Value{value.Int(1)})
	b := value.NewList([]value.Value{value.Int(1)})

	eq, _ := binaryOp("==", a, b, zeroPos)
	if !bool(eq.(value.Bool)) {
		t.Errorf("structurally equal lists should be ==")
	}
	ident, _ := binaryOp("===", a, b, zeroPos)
	if bool(ident.(value.Bool)) {
		t.Errorf("distinct list handles should not be ===")
	}
	neq, _ := binaryOp("!=", a, b, zeroPos)
	if bool(neq.(value.Bool)) {
		t.Errorf("structurally equal lists should not be !=")
	}
}

func TestEvalRange(t *testing.T) {
	got, err := evalRange(value.Int(2), value.Int(5), zeroPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[2, 3, 4]" {
		t.Errorf("got %q, want %q", got.String(), "[2, 3, 4]")
	}
}

func TestEvalRangeEmptyWhenStartGEEnd(t *testing.T) {
	got, err := evalRange(value.Int(5), value.Int(5), zeroPos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "[]" {
		t.Errorf("got %q, want %q", got.String(), "[]")
	}
}

func TestEvalRangeRejectsNonInt(t *testing.T) {
	_, err := evalRange(value.Str("a"), value.Int(5), zeroPos)
	if err == nil || err.Category != verror.CatTypeMismatch {
		t.Fatalf("expected TypeMismatch error, got %v", err)
	}
}
