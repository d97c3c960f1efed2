package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger provides structured logging for automator components.
// Log lines are written to the configured writer (stdout by default)
// so runs can be captured by cron or a supervisor without extra setup.
//
// A Logger is handed explicitly to every component that needs one;
// there is no process-wide logger state.
type Logger struct {
	runID     string
	component string
	out       io.Writer
	debug     bool
	mu        *sync.Mutex
}

// New creates a logger writing to out, tagged with the given component name.
// When debug is false, Debugf calls are suppressed.
// If out is nil, os.Stdout is used.
func New(out io.Writer, component string, debug bool) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		runID:     uuid.New().String(),
		component: component,
		out:       out,
		debug:     debug,
		mu:        &sync.Mutex{},
	}
}

// WithComponent returns a logger sharing this logger's writer, run ID,
// and debug setting, tagged with a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		runID:     l.runID,
		component: component,
		out:       l.out,
		debug:     l.debug,
		mu:        l.mu,
	}
}

// formatLogEntry creates a structured log entry with timestamp, component, and level
func (l *Logger) formatLogEntry(level, message string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return fmt.Sprintf("[%s] [%s] [%s] %s", timestamp, l.component, level, message)
}

func (l *Logger) write(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, v...)
	fmt.Fprintln(l.out, l.formatLogEntry(level, message))
}

// Debugf logs a debug-level message. No-op unless debug mode is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.write("DEBUG", format, v...)
}

// Infof logs an info-level message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.write("INFO", format, v...)
}

// Warnf logs a warning-level message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write("WARN", format, v...)
}

// Errorf logs an error-level message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write("ERROR", format, v...)
}

// RunID returns the unique ID for this run.
func (l *Logger) RunID() string {
	return l.runID
}

// Writer returns the writer log lines are sent to.
func (l *Logger) Writer() io.Writer {
	return l.out
}
