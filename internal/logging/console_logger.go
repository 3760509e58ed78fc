package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes log lines to w, stderr unless told otherwise.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	w       io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a logger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter creates a logger writing to w. The TUI uses it
// to keep log output off the screen it draws on.
func NewConsoleLoggerWithWriter(w io.Writer, verbose bool) *ConsoleLogger {
	if w == nil {
		w = io.Discard
	}
	return &ConsoleLogger{verbose: verbose, w: w}
}

// VerboseEnabled reports whether Verbose output is written.
func (l *ConsoleLogger) VerboseEnabled() bool {
	return l.verbose
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.w, prefix+format+"\n")
	}
}
