// Package logger builds the zerolog logger shared by the whole process.
//
// Every entry carries a "ts" field rendered in the configured location so
// access logs, migration logs and lifecycle logs line up in one stream.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the logger output.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
	Loc    *time.Location
}

// New returns a logger writing one JSON object per line (or console output when
// Format is "console"). A nil Writer means stdout, a nil Loc means UTC.
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	loc := opts.Loc
	if loc == nil {
		loc = time.UTC
	}
	if strings.EqualFold(opts.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		Hook(tsHook{loc: loc})
}

// ParseLevel maps a textual level to zerolog. Unknown values fall back to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// LoadLocation resolves a timezone name, defaulting to UTC when it is unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type tsHook struct {
	loc *time.Location
}

func (h tsHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}
