// Package logging writes structured JSON log lines.
//
// Every entry is a single JSON object terminated by a newline and carries at
// least ts, level and msg. Extra fields are merged in as-is.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type Fields map[string]any

// Logger emits JSON lines to a writer. It is safe for concurrent use.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w with timestamps in loc (UTC when nil).
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

var std = New(os.Stdout, time.UTC)

// Default returns the process-wide logger writing to stdout.
func Default() *Logger { return std }

func (l *Logger) Info(msg string, f Fields)  { l.log("info", msg, f) }
func (l *Logger) Error(msg string, f Fields) { l.log("error", msg, f) }

func (l *Logger) log(level, msg string, f Fields) {
	entry := make(map[string]any, len(f)+3)
	for k, v := range f {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}
