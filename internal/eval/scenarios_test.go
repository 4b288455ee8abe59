package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eZanmoto/seed/internal/builtin"
	"github.com/eZanmoto/seed/internal/eval"
	"github.com/eZanmoto/seed/internal/parse"
	"github.com/eZanmoto/seed/internal/verror"
)

// run parses and executes src against a fresh evaluator, returning
// everything written via print and any runtime error.
func run(t *testing.T, src string) (string, *verror.Error) {
	t.Helper()
	block, perr := parse.Parse(src)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	var buf bytes.Buffer
	ev := eval.NewEvaluator(&buf)
	builtin.Register(ev)
	_, rerr := ev.RunTop(block.Stmts)
	return buf.String(), rerr
}

// Scenario 1 (spec.md §8): the distilled spec's own prose claims `print(f())`
// prints "H", but that contradicts rule §4.3.1(5) (assignment strips the
// receiver) which scenarios 2 and 3 and the Receiver law both require.
// SPEC_FULL.md §8 resolves this in favor of rule 5: f holds no receiver, so
// `this` is Null inside it and `this._v` raises BadReceiver.
func TestScenario1ReceiverStrippedByDeclare(t *testing.T) {
	src := `a:={"_v":"H","v":fn(){return this._v;}}; f:=a.v; print(f());`
	_, err := run(t, src)
	if err == nil {
		t.Fatalf("expected BadReceiver error, got none")
	}
	if err.ID != verror.IDBadReceiver {
		t.Errorf("got ID %q, want %q", err.ID, verror.IDBadReceiver)
	}
}

func TestScenario2DetachedSetterLeavesOriginalUnchanged(t *testing.T) {
	out, err := run(t, `p:={"_a":10,"set":fn(a){this._a=a;}}; s:=p.set; s(20); print(p._a);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "10" {
		t.Errorf("got %q, want %q", out, "10")
	}
}

func TestScenario3CrossObjectSharing(t *testing.T) {
	out, err := run(t, `p1:={"_a":10,"set":fn(a){this._a=a;}}; p2:={"_a":30,"set":p1.set}; p2.set(20); print(p1._a); print(p2._a);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "10\n20\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestScenario4ClosureCapture(t *testing.T) {
	out, err := run(t, `v:=1; fn inc(){v=v+1;} inc(); inc(); print(v);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("got %q, want %q", out, "3")
	}
}

func TestScenario5SpreadAndCollect(t *testing.T) {
	out, err := run(t, `fn f(a,..r){print(r);} xs:=[2,3]; f(1,xs..,4);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[2, 3, 4]" {
		t.Errorf("got %q, want %q", out, "[2, 3, 4]")
	}
}

func TestScenario6StructuralVsReferenceEquality(t *testing.T) {
	out, err := run(t, `a:=[1,2]; b:=[1,2]; print(a==b); print(a===b);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "true\nfalse\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestScenario7OpAssignSingleEval(t *testing.T) {
	out, err := run(t, `xs:={"n":1}; xs.n += 10; print(xs.n);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "11" {
		t.Errorf("got %q, want %q", out, "11")
	}
}

func TestScenario8RangeSliceReplaceWithString(t *testing.T) {
	out, err := run(t, `xs:=[1,2,3,4,5]; xs[1:4]="ab"; print(xs);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `[1, "a", "b", 5]` {
		t.Errorf("got %q, want %q", out, `[1, "a", "b", 5]`)
	}
}

func TestShadowLaw(t *testing.T) {
	out, err := run(t, `n:=1; { n:=2; print(n); } print(n);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2\n1\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestShadowLawAssignMutatesOuter(t *testing.T) {
	out, err := run(t, `n:=1; { n=2; } print(n);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("got %q, want %q", out, "2")
	}
}

func TestIterationCompletenessOverList(t *testing.T) {
	out, err := run(t, `for x in [1,2,3] { print(x); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1\n2\n3\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestIterationOverObjectYieldsKeyValuePairs(t *testing.T) {
	out, err := run(t, `for kv in {"a":1,"b":2} { print(kv); }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[\"a\", 1]\n[\"b\", 2]\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	_, err := run(t, `break;`)
	if err == nil {
		t.Fatalf("expected BadControlFlow error")
	}
}

func TestReturnOutsideFunctionIsError(t *testing.T) {
	_, err := run(t, `return 1;`)
	if err == nil {
		t.Fatalf("expected BadControlFlow error")
	}
}
