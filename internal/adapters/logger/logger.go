// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/objcbuild/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// metadataer describes an error that carries structured metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain prepared for rendering.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr at info level.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild replaces the slog handler. The caller must hold the write lock
// unless the logger is not shared yet.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug records.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a diagnostic message. It is dropped unless verbose output is enabled.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error and its chain of causes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks the error chain. zerr links contribute their own
// message and metadata; the first foreign error contributes its full text and ends the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if md, ok := current.(metadataer); ok {
			entry.Metadata = md.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: <message>
//	       key: value
//
//	  Caused by:
//	    → <cause>
//	      key: value
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, kv := range formatMetadata(entry.Metadata) {
			lines = append(lines, indent+kv)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any) []string {
	if len(md) == 0 {
		return nil
	}

	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %v", k, md[k]))
	}
	return out
}
