// Package logging builds the process-wide logger for wowsafe.
//
// The TUI owns the terminal, so log output never goes to stderr while the
// program runs. Instead the logger writes into a fixed-capacity ring sink
// that the log screen renders, and optionally into a file for post-mortem
// reading. Components receive the logger by value; there is no package-level
// singleton to reach for.
package logging

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRingCapacity is how many log lines the in-memory sink retains
// before evicting the oldest.
const DefaultRingCapacity = 500

// Ring is a lock-guarded, fixed-capacity line sink. Writes beyond capacity
// evict the oldest line. It implements io.Writer so it can back a zerolog
// logger directly.
type Ring struct {
	mu    sync.Mutex
	lines []string
	cap   int
}

// NewRing creates a ring sink holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &Ring{cap: capacity}
}

// Write appends one or more newline-separated log lines.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		r.lines = append(r.lines, line)
	}
	if over := len(r.lines) - r.cap; over > 0 {
		r.lines = r.lines[over:]
	}
	return len(p), nil
}

// Lines returns a copy of the retained lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len reports how many lines are currently retained.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// NewLogger creates a logger writing human-readable lines to w at the given
// level.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// LevelFromString parses a level name ("debug", "info", ...), defaulting to
// info on unknown input.
func LevelFromString(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
