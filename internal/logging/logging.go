// Package logging appends structured JSON entries to a shared log file.
// Nothing is ever written to the terminal: while the program runs, the
// terminal belongs to the renderer. Errors are always recorded; trace
// entries only when tracing is enabled.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "kegtui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// entry is one log line. The file is a JSONL stream, one entry per line,
// so trace sessions can be filtered with standard tools.
type entry struct {
	Time    time.Time   `json:"time"`
	Level   string      `json:"level"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Error records the error in the shared log. Errors bypass the trace gate.
func Error(err error) {
	if err == nil {
		return
	}
	write(entry{
		Level:   "error",
		Event:   "error",
		Payload: map[string]interface{}{"error": err.Error()},
	})
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a trace entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	write(entry{Level: "trace", Event: event, Payload: payload})
}

func write(e entry) {
	e.Time = time.Now().UTC()

	mu.Lock()
	path := logPath
	mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(e); err != nil {
		fmt.Fprintf(os.Stderr, "log encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
