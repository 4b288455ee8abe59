package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNilSessionMethodsAreNoOps(t *testing.T) {
	var s *Session
	s.Call("f", 1)
	s.Return("f", 1, "1", "")
	s.Emit(Event{Func: "f"})
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil session should be a no-op, got %v", err)
	}
}

func TestSessionEmitWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	s := &Session{sink: &buf}
	s.Call("f", 0)

	line := strings.TrimSpace(buf.String())
	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		t.Fatalf("Emit did not produce valid JSON: %v (%q)", err, line)
	}
	if ev.EventType != "call" || ev.Func != "f" {
		t.Errorf("got %+v, want call event for func f", ev)
	}
}

func TestSessionReturnCarriesValueOrError(t *testing.T) {
	var buf bytes.Buffer
	s := &Session{sink: &buf}
	s.Return("f", 0, "42", "")

	var ev Event
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &ev); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if ev.Value != "42" {
		t.Errorf("Value = %q, want %q", ev.Value, "42")
	}
	if ev.Error != "" {
		t.Errorf("Error = %q, want empty", ev.Error)
	}
}

func TestCloseWithoutFileLoggerIsNoOp(t *testing.T) {
	s := NewStderr()
	if err := s.Close(); err != nil {
		t.Errorf("Close on a stderr session should be a no-op, got %v", err)
	}
}
