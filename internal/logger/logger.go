// Package logger provides verbose logging for lorequery.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the search pipeline.
// Warnings are always printed. Nothing is ever written to stdout, which
// carries MCP stdio traffic.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(true, "[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(true, "[INFO] ", format, args...)
}

// Warn prints a warning message regardless of verbose mode.
func Warn(format string, args ...any) {
	write(false, "[WARN] ", format, args...)
}

func write(gated bool, level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, level+format+"\n", args...)
}

// Scope tags every message with a request id.
type Scope struct {
	prefix string
}

// For returns a Scope whose messages carry requestID.
func For(requestID string) Scope {
	return Scope{prefix: "[" + requestID + "] "}
}

// Debug prints a tagged message if verbose mode is enabled.
func (s Scope) Debug(format string, args ...any) {
	write(true, "[DEBUG] "+s.prefix, format, args...)
}

// Info prints a tagged informational message if verbose mode is enabled.
func (s Scope) Info(format string, args ...any) {
	write(true, "[INFO] "+s.prefix, format, args...)
}

// Warn prints a tagged warning regardless of verbose mode.
func (s Scope) Warn(format string, args ...any) {
	write(false, "[WARN] "+s.prefix, format, args...)
}
