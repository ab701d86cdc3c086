package logging

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// IsNil reports whether logger is nil or wraps a nil pointer receiver.
func IsNil(logger Logger) bool {
	if logger == nil {
		return true
	}
	val := reflect.ValueOf(logger)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return val.IsNil()
	default:
		return false
	}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if IsNil(logger) {
		return Nop()
	}
	return logger
}

type componentLogger struct {
	mu        sync.Mutex
	out       *log.Logger
	level     Level
	component string
}

var (
	defaultOut   *log.Logger
	defaultLevel = InfoLevel
	defaultOnce  sync.Once
)

func sharedOutput() *log.Logger {
	defaultOnce.Do(func() {
		defaultOut = log.New(os.Stderr, "", 0)
	})
	return defaultOut
}

// SetDefaultLevel adjusts the minimum level for loggers created afterwards.
func SetDefaultLevel(level Level) {
	defaultLevel = level
}

// NewComponentLogger returns the default application logger scoped to a component.
func NewComponentLogger(component string) Logger {
	return &componentLogger{
		out:       sharedOutput(),
		level:     defaultLevel,
		component: component,
	}
}

func (l *componentLogger) log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.component != "" {
		l.out.Printf("[%s] [%s] [%s] %s", ts, level, l.component, msg)
		return
	}
	l.out.Printf("[%s] [%s] %s", ts, level, msg)
}

func (l *componentLogger) Debug(format string, args ...any) {
	l.log(DebugLevel, format, args...)
}

func (l *componentLogger) Info(format string, args ...any) {
	l.log(InfoLevel, format, args...)
}

func (l *componentLogger) Warn(format string, args ...any) {
	l.log(WarnLevel, format, args...)
}

func (l *componentLogger) Error(format string, args ...any) {
	l.log(ErrorLevel, format, args...)
}
