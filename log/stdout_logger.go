package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger prints every message to standard output, prefixed with a timestamp and the level. Messages below
// 'MinLevel' are dropped.
type StdoutLogger struct {
	MinLevel Level

	// out is only overridden in tests.
	out io.Writer
}

// Log writes the formatted message if its level is at least 'MinLevel'.
func (s StdoutLogger) Log(level Level, format string, args ...any) {
	if level < s.MinLevel {
		return
	}

	out := s.out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s %s: %s\n", time.Now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}
