// Package logging provides a structured JSONL logger for the runtime.
// A TUI owns the terminal, so diagnostics go to a rotated file instead of
// stderr.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Entry is one structured log record.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Event     string         `json:"event"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger writes JSONL entries to a single destination.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	minLevel Level
}

// NewFile creates a logger writing to path with size-based rotation.
func NewFile(path string) *Logger {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	return &Logger{out: lj, closer: lj, minLevel: LevelInfo}
}

// NewWriter creates a logger writing to an arbitrary writer (for tests).
func NewWriter(w io.Writer) *Logger {
	return &Logger{out: w, minLevel: LevelDebug}
}

// SetMinLevel sets the minimum severity that gets written.
func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Log writes an entry if it clears the minimum level.
func (l *Logger) Log(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if levelRank[entry.Level] < levelRank[l.minLevel] {
		return nil
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.out.Write(data); err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}
	return nil
}

// Debug logs a debug entry.
func (l *Logger) Debug(event string, fields map[string]any) error {
	return l.Log(Entry{Level: LevelDebug, Event: event, Fields: fields})
}

// Info logs an info entry.
func (l *Logger) Info(event string, fields map[string]any) error {
	return l.Log(Entry{Level: LevelInfo, Event: event, Fields: fields})
}

// Warn logs a warning entry.
func (l *Logger) Warn(event string, fields map[string]any) error {
	return l.Log(Entry{Level: LevelWarn, Event: event, Fields: fields})
}

// Error logs an error entry.
func (l *Logger) Error(event string, fields map[string]any) error {
	return l.Log(Entry{Level: LevelError, Event: event, Fields: fields})
}

// Close closes the underlying destination, if it supports closing.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
