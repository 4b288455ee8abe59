// Package trace provides optional execution tracing for the evaluator:
// line-delimited JSON call/return events written to stderr or a rotating
// log file, enabled by the `--trace`/`--trace-file` CLI flags (SPEC_FULL.md
// §6.F).
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event is a single call-boundary trace record.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"` // "call" or "return"
	Func      string    `json:"func"`
	Depth     int       `json:"depth"`
	Value     string    `json:"value,omitempty"` // return value, for "return" events
	Error     string    `json:"error,omitempty"`
}

// Session owns the trace output sink. A nil *Session disables tracing;
// callers check for nil rather than an enabled flag, keeping the hot path
// a single pointer comparison.
type Session struct {
	mu     sync.Mutex
	sink   io.Writer
	logger *lumberjack.Logger
}

// NewStderr creates a Session writing to stderr.
func NewStderr() *Session {
	return &Session{sink: os.Stderr}
}

// NewFile creates a Session writing to a rotating log file (5 backups,
// compressed, 50MB per file, matching the teacher's trace defaults).
func NewFile(path string) *Session {
	logger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     0,
		Compress:   true,
	}
	return &Session{sink: logger, logger: logger}
}

// Emit writes ev as a line of JSON to the sink.
func (s *Session) Emit(ev Event) {
	if s == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace serialization error: %v\n", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.sink, "%s\n", data)
}

// Call emits a call-entry event.
func (s *Session) Call(name string, depth int) {
	if s == nil {
		return
	}
	s.Emit(Event{Timestamp: time.Now(), EventType: "call", Func: name, Depth: depth})
}

// Return emits a call-exit event, carrying either the stringified return
// value or an error message.
func (s *Session) Return(name string, depth int, result string, errMsg string) {
	if s == nil {
		return
	}
	s.Emit(Event{Timestamp: time.Now(), EventType: "return", Func: name, Depth: depth, Value: result, Error: errMsg})
}

// Close flushes and closes the underlying log file, if any.
func (s *Session) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}
