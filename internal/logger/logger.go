// Package logger provides verbose diagnostic logging for scoop.
// Messages are only written when --verbose is set, and go to stderr so
// they never mix with the exported file list on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level prefixes written before each message.
const (
	prefixDebug = "[DEBUG] "
	prefixInfo  = "[INFO] "
	prefixWarn  = "[WARN] "
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

// SetOutput sets the writer for verbose logs. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debug logs cache decoding and per-record decisions.
func Debug(format string, args ...any) {
	logf(prefixDebug, format, args...)
}

// Info logs run-level milestones.
func Info(format string, args ...any) {
	logf(prefixInfo, format, args...)
}

// Warn logs records that were skipped or defaulted.
func Warn(format string, args ...any) {
	logf(prefixWarn, format, args...)
}

// Section prints a header separating the phases of a run.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
