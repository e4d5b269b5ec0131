// Package logger is the leveled logger the widget, config loader and CLI
// share. Debug lines only print while LOADINGLINE_DEBUG is non-empty.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv turns on debug output when set to any non-empty value.
const DebugEnv = "LOADINGLINE_DEBUG"

// Logger takes printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type envLogger struct {
	prefix string
}

// NewEnvLogger returns a Logger writing through the log package with prefix
// in front of every line. DebugEnv is checked on each Debug call, so setting
// it after construction (as --debug does) still takes effect.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if debugEnabled() {
		l.print("", format, args)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.print("", format, args)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.print("WARN: ", format, args)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.print("ERROR: ", format, args)
}

func (l *envLogger) print(level, format string, args []interface{}) {
	log.Printf(l.prefix+" "+level+format, args...)
}

func debugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

type noopLogger struct{}

// Noop drops everything. The watch view uses it so log lines stay off the
// Bubble Tea screen.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// LogMessage is one line recorded by a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger records messages in memory so tests can check what the widget
// and CLI reported.
type BufferLogger struct {
	Messages []LogMessage
}

func NewBufferLogger() *BufferLogger {
	return &BufferLogger{Messages: make([]LogMessage, 0)}
}

func (l *BufferLogger) record(level, format string, args []interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args) }
func (l *BufferLogger) Info(format string, args ...interface{})  { l.record("info", format, args) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args) }
func (l *BufferLogger) Error(format string, args ...interface{}) { l.record("error", format, args) }

// HasLevel reports whether anything was recorded at level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("[loadingline]")

// Default is the logger the CLI uses for flag and config warnings.
func Default() Logger {
	return defaultLogger
}

func SetDefault(l Logger) {
	defaultLogger = l
}
