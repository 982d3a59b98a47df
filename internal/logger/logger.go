// Package logger is a small leveled logger for the CLI. Debug output is off
// unless verbose mode is enabled; everything goes to stderr so wire documents
// on stdout stay clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

// SetVerbose enables or disables debug-level output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debugf logs a debug message. Dropped unless verbose mode is on.
func Debugf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	write("DEBUG", format, args...)
}

// Infof logs an informational message. Dropped unless verbose mode is on.
func Infof(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	write("INFO", format, args...)
}

// Errorf logs an error message. Always written.
func Errorf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	write("ERROR", format, args...)
}

func write(level, format string, args ...any) {
	fmt.Fprintf(out, "[%s] [%s] %s\n", time.Now().Format(time.RFC3339), level, fmt.Sprintf(format, args...))
}
