// Package logger provides the default core.Logger implementation.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/directdb/directdb/core"
)

var _ core.Logger = (*Logger)(nil)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger writes timestamped lines in form of "[level]: message".
type Logger struct {
	logger *log.Logger
	level  Level
}

// New creates a logger writing to w. Messages below minLevel are dropped.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		logger: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		level:  minLevel,
	}
}

// Default logs warnings and errors to stderr.
func Default() *Logger {
	return New(os.Stderr, LevelWarn)
}

// Nop discards everything.
func Nop() *Logger {
	return New(io.Discard, LevelError+1)
}

// OpenFile logs to an append-only file.
func OpenFile(path string, minLevel Level) (*Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return nil, nil, err
	}

	return New(file, minLevel), file, nil
}

func (l *Logger) log(level Level, message string) {
	if level < l.level {
		return
	}
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Logger) Debug(msg string) {
	l.log(LevelDebug, msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string) {
	l.log(LevelInfo, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.log(LevelWarn, msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.log(LevelError, msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}
