// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"fmt"
	"sync"
)

// Level is the severity of a recorded log line.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Line is one recorded log call.
type Line struct {
	Level   Level
	Message string
}

// RecordingSink captures log calls for assertions.
type RecordingSink struct {
	mu    sync.Mutex
	lines []Line
}

func (s *RecordingSink) record(level Level, msg interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, Line{Level: level, Message: fmt.Sprint(msg)})
}

func (s *RecordingSink) Debug(msg interface{}, _ ...interface{}) { s.record(LevelDebug, msg) }
func (s *RecordingSink) Info(msg interface{}, _ ...interface{})  { s.record(LevelInfo, msg) }
func (s *RecordingSink) Error(msg interface{}, _ ...interface{}) { s.record(LevelError, msg) }

// Lines returns a copy of every recorded line.
func (s *RecordingSink) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Line(nil), s.lines...)
}

// Messages returns the messages recorded at level, in order.
func (s *RecordingSink) Messages(level Level) []string {
	var out []string
	for _, l := range s.Lines() {
		if l.Level == level {
			out = append(out, l.Message)
		}
	}

	return out
}
