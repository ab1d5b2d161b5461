package mocks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/y4mkit/pkg/ports"
)

// LogEntry is one message recorded by Logger.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Logger is a mock implementation of ports.Logger that records messages.
// Loggers derived with WithComponent record into the same store.
type Logger struct {
	store     *logStore
	component string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{store: &logStore{}}
}

func (m *Logger) Trace(msg string, args ...interface{}) { m.record(ports.LevelTrace, msg, args) }
func (m *Logger) Debug(msg string, args ...interface{}) { m.record(ports.LevelDebug, msg, args) }
func (m *Logger) Info(msg string, args ...interface{})  { m.record(ports.LevelInfo, msg, args) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.record(ports.LevelWarn, msg, args) }
func (m *Logger) Error(msg string, args ...interface{}) { m.record(ports.LevelError, msg, args) }

// WithComponent returns a logger sharing this logger's entries.
func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{store: m.store, component: component}
}

func (m *Logger) record(level ports.LogLevel, msg string, args []interface{}) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:     level,
		Component: m.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns the recorded messages at the given level (for test verification).
func (m *Logger) Entries(level ports.LogLevel) []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	var out []LogEntry
	for _, e := range m.store.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (m *Logger) Contains(level ports.LogLevel, substr string) bool {
	for _, e := range m.Entries(level) {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
