// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output so the demonstration programs can
// switch between human-readable trace lines and structured logging.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing trace output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// TraceLogger implements Logger for structured trace output. Each message
// becomes one JSON line, which keeps the demonstration traces parseable when
// the output is consumed by tooling instead of a person.
//
// TraceLogger is safe for concurrent use by multiple goroutines.
type TraceLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewTraceLogger creates a structured trace logger writing JSON lines to
// writer. With silent set, output is suppressed entirely.
func NewTraceLogger(writer io.Writer, silent bool) *TraceLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &TraceLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Printf is safe for concurrent use by multiple goroutines.
func (t *TraceLogger) Printf(format string, v ...any) {
	t.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Println is safe for concurrent use by multiple goroutines.
func (t *TraceLogger) Println(v ...any) {
	t.emit(fmt.Sprint(v...))
}

func (t *TraceLogger) emit(msg string) {
	if t.silent {
		return
	}

	logEntry := map[string]any{
		"level":   "info",
		"message": msg,
	}

	data, _ := json.Marshal(logEntry)

	t.mu.Lock()
	fmt.Fprintln(t.writer, string(data))
	t.mu.Unlock()
}

// SetOutput sets the output destination for the trace logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (t *TraceLogger) SetOutput(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if w == nil {
		t.writer = io.Discard
	} else {
		t.writer = w
	}
}
