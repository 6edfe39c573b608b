// Package log exposes the pluggable logger used by the priority queue packages. Nothing is logged until an
// application provides a logger using 'SetLogger'.
package log

import "fmt"

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is used for per-operation events such as a queue being freed or a drain stopping early.
	LevelTrace Level = iota

	// LevelDebug is used for fine-grained events which are useful when debugging the library.
	LevelDebug

	// LevelInfo is used for course-grained informational events.
	LevelInfo

	// LevelWarning is used for expected but potentially interesting events.
	LevelWarning

	// LevelError is used for errors which still allow the library to continue running.
	LevelError

	// LevelPanic is used for contract violations, such as using a nil queue; it's always followed by a panic.
	LevelPanic
)

// String returns the four letter prefix used when printing the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return fmt.Sprintf("LVL%d", uint8(l))
}

// Logger allows applications to route the library's log output into their own logging.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// logger is used by all the package level functions below; a <nil> logger discards everything.
var logger Logger

// SetLogger sets the logger used by the library, passing <nil> disables logging.
func SetLogger(l Logger) {
	logger = l
}

// Logf logs the given message at the given level.
//
// NOTE: If no logger has been set using 'SetLogger' the message is discarded.
func Logf(level Level, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func Tracef(format string, args ...any) {
	Logf(LevelTrace, format, args...)
}

// Panicf logs the provided information at the panic level then panics with the formatted message. The panic happens
// regardless of whether a logger has been set.
func Panicf(format string, args ...any) {
	Logf(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
